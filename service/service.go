package service

import "context"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the terminal screen, the audio device, the content store
//
// Lifecycle:
//  1. Construction
//  2. Init(ctx) - acquire resources, in dependency order
//  3. Start(ctx) - begin operation, after every service has initialized
//  4. [runtime operation]
//  5. Stop() - release resources, in reverse order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init(ctx context.Context) error
	Start(ctx context.Context) error

	// Stop must be idempotent
	Stop() error
}
