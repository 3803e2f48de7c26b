package http

import "call-audio-control/internal/routing"

// --- Request DTOs ---

type speakerphoneReq struct {
	On *bool `json:"on" binding:"required"`
}

type modeReq struct {
	Mode *string `json:"mode" binding:"required"`
}

// --- Response DTOs ---

type decisionResp struct {
	Category            string   `json:"category"`
	SpeakerphoneEnabled bool     `json:"speakerphone_enabled"`
	Options             []string `json:"options"`
}

func newDecisionResp(d routing.Decision) decisionResp {
	return decisionResp{
		Category:            d.Category.String(),
		SpeakerphoneEnabled: d.SpeakerphoneEnabled,
		Options:             d.Options.Strings(),
	}
}

type successResp struct {
	Success bool `json:"success"`
}

type speakerphoneResp struct {
	On     bool   `json:"on"`
	Source string `json:"source"`
}

func (h *handler) newSpeakerphoneResp(st routing.SpeakerphoneState) speakerphoneResp {
	source := "tracked"
	if st.Live {
		source = "live"
	}
	return speakerphoneResp{On: st.On, Source: source}
}

type modeResp struct {
	Success  bool         `json:"success"`
	Decision decisionResp `json:"decision"`
}

type stateResp struct {
	Decision decisionResp `json:"decision"`
}
