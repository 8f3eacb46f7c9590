package handlers

import (
	"github.com/susthoma/diabetes-diet-bot/internal/interfaces"
	"github.com/susthoma/diabetes-diet-bot/internal/session"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	UserService interfaces.UserServiceInterface
	GlucoseSvc  interfaces.GlucoseServiceInterface
	Sessions    *session.Registry
}
