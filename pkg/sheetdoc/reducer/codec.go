package reducer

import (
	"encoding/json"
	"fmt"
)

// Envelope is the wire form of one action: a type tag plus the action's own
// fields as payload. Action logs are sequences of envelopes, one per line or
// as a JSON array.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Encode wraps an action into its wire envelope.
func Encode(action Action) (Envelope, error) {
	payload, err := json.Marshal(action)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s: %w", action.Type(), err)
	}
	env := Envelope{Type: action.Type()}
	// Omit empty payloads so marker actions serialize as a bare type tag.
	if string(payload) != "{}" {
		env.Payload = payload
	}
	return env, nil
}

// Decode reconstructs an action from its wire envelope.
func Decode(env Envelope) (Action, error) {
	blank, ok := blankAction(env.Type)
	if !ok {
		return nil, fmt.Errorf("decode action %q: %w", env.Type, ErrUnknownAction)
	}
	if len(env.Payload) == 0 {
		return deref(blank), nil
	}
	if err := json.Unmarshal(env.Payload, blank); err != nil {
		return nil, fmt.Errorf("decode action %q: %w", env.Type, err)
	}
	return deref(blank), nil
}

// blankAction returns a pointer to a zero value of the action type named by
// the wire tag. The pointer lets json.Unmarshal fill it in place.
func blankAction(typeName string) (interface{}, bool) {
	switch typeName {
	case TypeAddSheet:
		return &AddSheet{}, true
	case TypeAddSheetFromRows:
		return &AddSheetFromRows{}, true
	case TypeRemoveSheet:
		return &RemoveSheet{}, true
	case TypeSetActiveSheet:
		return &SetActiveSheet{}, true
	case TypeUpdateExistingSheet:
		return &UpdateExistingSheet{}, true
	case TypeUpdateCell:
		return &UpdateCell{}, true
	case TypeBulkUpdateCells:
		return &BulkUpdateCells{}, true
	case TypeLoadRows:
		return &LoadRows{}, true
	case TypeFormatCells:
		return &FormatCells{}, true
	case TypeAddMoreRows:
		return &AddMoreRows{}, true
	case TypeAddChart:
		return &AddChart{}, true
	case TypeUpdateChart:
		return &UpdateChart{}, true
	case TypeRemoveChart:
		return &RemoveChart{}, true
	case TypeToggleAIMode:
		return &ToggleAIMode{}, true
	case TypeToggleTheme:
		return &ToggleTheme{}, true
	case TypeCreateAIUpdates:
		return &CreateAIUpdates{}, true
	case TypeAcceptAIUpdate:
		return &AcceptAIUpdate{}, true
	case TypeRejectAIUpdate:
		return &RejectAIUpdate{}, true
	case TypeAcceptAllAIUpdates:
		return &AcceptAllAIUpdates{}, true
	case TypeRejectAllAIUpdates:
		return &RejectAllAIUpdates{}, true
	case TypeAcceptColumnAIUpdates:
		return &AcceptColumnAIUpdates{}, true
	case TypeRejectColumnAIUpdates:
		return &RejectColumnAIUpdates{}, true
	case TypeAcceptRowAIUpdates:
		return &AcceptRowAIUpdates{}, true
	case TypeRejectRowAIUpdates:
		return &RejectRowAIUpdates{}, true
	case TypeRestoreOriginalState:
		return &RestoreOriginalState{}, true
	case TypeSetState:
		return &SetState{}, true
	default:
		return nil, false
	}
}

func deref(ptr interface{}) Action {
	switch p := ptr.(type) {
	case *AddSheet:
		return *p
	case *AddSheetFromRows:
		return *p
	case *RemoveSheet:
		return *p
	case *SetActiveSheet:
		return *p
	case *UpdateExistingSheet:
		return *p
	case *UpdateCell:
		return *p
	case *BulkUpdateCells:
		return *p
	case *LoadRows:
		return *p
	case *FormatCells:
		return *p
	case *AddMoreRows:
		return *p
	case *AddChart:
		return *p
	case *UpdateChart:
		return *p
	case *RemoveChart:
		return *p
	case *ToggleAIMode:
		return *p
	case *ToggleTheme:
		return *p
	case *CreateAIUpdates:
		return *p
	case *AcceptAIUpdate:
		return *p
	case *RejectAIUpdate:
		return *p
	case *AcceptAllAIUpdates:
		return *p
	case *RejectAllAIUpdates:
		return *p
	case *AcceptColumnAIUpdates:
		return *p
	case *RejectColumnAIUpdates:
		return *p
	case *AcceptRowAIUpdates:
		return *p
	case *RejectRowAIUpdates:
		return *p
	case *RestoreOriginalState:
		return *p
	case *SetState:
		return *p
	default:
		return nil
	}
}
