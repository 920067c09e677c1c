package domain

import "errors"

var ErrInvalidThreshold = errors.New("login failure threshold must be at least 1")

// AlertRules is serialized under the alertas_config settings key.
type AlertRules struct {
	LoginFailureThreshold int      `json:"falhas_login"`
	FlagOffHours          bool     `json:"acessos_suspeitos"`
	RestrictedURLs        []string `json:"urls_restritas"`
}

func DefaultAlertRules() AlertRules {
	return AlertRules{
		LoginFailureThreshold: 3,
		FlagOffHours:          true,
		RestrictedURLs:        []string{"/admin", "/config", "/system", "/api/admin"},
	}
}

func (r AlertRules) Validate() error {
	if r.LoginFailureThreshold < 1 {
		return ErrInvalidThreshold
	}
	return nil
}

// Clone returns a copy that does not share the URL slice.
func (r AlertRules) Clone() AlertRules {
	r.RestrictedURLs = append([]string(nil), r.RestrictedURLs...)
	return r
}
