package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"beyazmasa/internal/shared/logger"
)

// SeedDefaultPolicies installs the role policies the handlers rely on.
// Running it twice is harmless; casbin ignores duplicate rows.
func SeedDefaultPolicies(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admins manage everything.
		{"admin", "tickets", "read"},
		{"admin", "tickets", "create"},
		{"admin", "tickets", "update"},
		{"admin", "tickets", "assign"},
		{"admin", "tickets", "cancel"},
		{"admin", "tickets", "delete"},
		{"admin", "staff", "read"},
		{"admin", "staff", "create"},
		{"admin", "staff", "delete"},
		{"admin", "reports", "read"},
		{"admin", "events", "read"},
		{"admin", "events", "manage"},
		{"admin", "notes", "read"},
		{"admin", "notes", "create"},
		{"admin", "dashboard", "read"},

		// Staff work their department's tickets; finer scoping happens in
		// the use case layer.
		{"staff", "tickets", "read"},
		{"staff", "tickets", "create"},
		{"staff", "tickets", "update"},
		{"staff", "staff", "read"},
		{"staff", "events", "read"},
		{"staff", "events", "manage"},
		{"staff", "notes", "read"},
		{"staff", "notes", "create"},
		{"staff", "dashboard", "read"},
	}

	for _, policy := range policies {
		if _, err := enforcer.AddPolicy(policy); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policies: %w", err)
	}

	log.Info("default permission policies seeded")
	return nil
}
