package tools

import (
	"github.com/rs/zerolog/log"
)

// AutoApprove approves every action after logging it. It satisfies the
// ApproveFunc contract for non-interactive deployments; a real
// human-in-the-loop implementation would block here instead.
func AutoApprove(description string) bool {
	log.Info().Str("action", description).Msg("auto-approving sensitive action")
	return true
}
