package auth_controller

import "go.uber.org/zap"

// Controller handles the sign-in and create-account forms. Nothing is
// persisted and no credentials are checked.
type Controller struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Controller {
	return &Controller{log: log}
}
