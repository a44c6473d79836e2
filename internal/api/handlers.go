package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"academiclint/internal/config"
	"academiclint/internal/domains"
	"academiclint/internal/lerr"
	"academiclint/internal/lint"
	"academiclint/internal/output"
	"academiclint/internal/version"
)

// CheckRequest is the POST /check body.
type CheckRequest struct {
	Text   string              `json:"text"`
	Config *CheckRequestConfig `json:"config,omitempty"`
}

// CheckRequestConfig carries the per-request configuration overrides.
type CheckRequestConfig struct {
	Level             string   `json:"level,omitempty"`
	MinDensity        *float64 `json:"minDensity,omitempty"`
	Domain            string   `json:"domain,omitempty"`
	DomainTerms       []string `json:"domainTerms,omitempty"`
	AdditionalWeasels []string `json:"additionalWeasels,omitempty"`
}

type errorResponse struct {
	Code    lerr.ErrorCode `json:"code"`
	Message string         `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": version.Version,
		"commit":  version.Commit,
	})
}

func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, lerr.New(lerr.ValidationFailed, "use GET"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"domains": listDomains(s.domains)})
}

type domainInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TermCount   int    `json:"termCount"`
}

func listDomains(m *domains.Manager) []domainInfo {
	names := domains.BuiltinNames()
	infos := make([]domainInfo, 0, len(names))
	for _, name := range names {
		d, err := m.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, domainInfo{
			Name:        d.Name,
			Description: d.Description,
			TermCount:   len(d.TechnicalTerms),
		})
	}
	return infos
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, lerr.New(lerr.ValidationFailed, "use POST"))
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest,
			lerr.Wrap(lerr.ValidationFailed, "invalid request body", err))
		return
	}

	cfg, err := s.requestConfig(req.Config)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	linter := lint.New(cfg, s.logger)
	res, err := linter.Check(req.Text)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	jf := &output.JSONFormatter{}
	if err := jf.Format(w, res); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// requestConfig merges per-request overrides onto the server's base
// configuration and resolves the domain vocabulary.
func (s *Server) requestConfig(override *CheckRequestConfig) (config.Config, error) {
	cfg := s.baseCfg
	if override == nil {
		return cfg, nil
	}

	if override.Level != "" {
		level, err := config.ParseLevel(override.Level)
		if err != nil {
			return cfg, err
		}
		leveled, err := config.ForLevel(level)
		if err != nil {
			return cfg, err
		}
		cfg.Level = leveled.Level
		cfg.MinDensity = leveled.MinDensity
	}
	if override.MinDensity != nil {
		cfg.MinDensity = *override.MinDensity
	}
	if len(override.DomainTerms) > 0 {
		cfg.DomainTerms = append(cfg.DomainTerms, override.DomainTerms...)
	}
	if len(override.AdditionalWeasels) > 0 {
		cfg.AdditionalWeasels = append(cfg.AdditionalWeasels, override.AdditionalWeasels...)
	}
	if override.Domain != "" {
		terms, err := s.domains.GetTerms(override.Domain)
		if err != nil {
			return cfg, err
		}
		cfg.Domain = override.Domain
		cfg.DomainTerms = append(cfg.DomainTerms, terms...)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func statusFor(err error) int {
	var le *lerr.Error
	if errors.As(err, &le) {
		switch le.Code {
		case lerr.ValidationFailed, lerr.ConfigInvalid:
			return http.StatusBadRequest
		case lerr.ModelUnavailable:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Code: lerr.InternalError, Message: err.Error()}
	var le *lerr.Error
	if errors.As(err, &le) {
		resp.Code = le.Code
		resp.Message = le.Message
	}
	writeJSON(w, status, resp)
}
