package request

import (
	"fmt"
	"net"
	"strings"
)

type CreateDenylistEntryRequest struct {
	IP     string `json:"ip"`
	Days   int    `json:"days"`
	Reason string `json:"reason,omitempty"`
}

func (r *CreateDenylistEntryRequest) Validate() error {
	r.IP = strings.TrimSpace(r.IP)
	if r.IP == "" {
		return fmt.Errorf("ip is required")
	}
	if net.ParseIP(strings.Trim(r.IP, "[]")) == nil {
		return fmt.Errorf("ip must be a valid IPv4 or IPv6 address")
	}
	if r.Days <= 0 {
		return fmt.Errorf("days must be greater than zero")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if len(r.Reason) > 256 {
		return fmt.Errorf("reason must be at most 256 characters")
	}
	return nil
}
