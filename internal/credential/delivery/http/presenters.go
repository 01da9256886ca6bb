package http

import (
	"time"

	"notion-gcal-sync/internal/credential"
)

type authURLResp struct {
	AuthURL string `json:"auth_url"`
}

type callbackReq struct {
	Code  string `form:"code"`
	State string `form:"state"`
}

func (r callbackReq) toInput(identity string) credential.BootstrapInput {
	return credential.BootstrapInput{
		Identity: identity,
		Code:     r.Code,
	}
}

type callbackResp struct {
	Message      string    `json:"message"`
	Identity     string    `json:"identity"`
	AccessExpiry time.Time `json:"access_expiry"`
	Scope        string    `json:"scope,omitempty"`
}

func (h *handler) newCallbackResp(o credential.BootstrapOutput) callbackResp {
	return callbackResp{
		Message:      "authorization successful, tokens saved",
		Identity:     o.Record.Identity,
		AccessExpiry: o.Record.AccessExpiry,
		Scope:        o.Record.Scope,
	}
}
