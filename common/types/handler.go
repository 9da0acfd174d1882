package types

// Action is a lifecycle verb requested by the host.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionList   Action = "LIST"
)

// CallbackContext is carried between invocations by the host and never inspected here.
type CallbackContext map[string]any

type HandlerRequest struct {
	Action                    Action          `json:"action"`
	LogicalResourceIdentifier string          `json:"logicalResourceIdentifier,omitempty"`
	DesiredResourceState      *Membership     `json:"desiredResourceState"`
	PreviousResourceState     *Membership     `json:"previousResourceState,omitempty"`
	CallbackContext           CallbackContext `json:"callbackContext,omitempty"`
}

type OperationStatus string

const (
	OperationStatusSuccess OperationStatus = "SUCCESS"
	OperationStatusFailed  OperationStatus = "FAILED"
)

// ProgressEvent is the tagged outcome of one invocation: either SUCCESS with
// zero, one or many models, or FAILED with an error code and message.
type ProgressEvent struct {
	Status          OperationStatus `json:"status"`
	ErrorCode       string          `json:"errorCode,omitempty"`
	Message         string          `json:"message,omitempty"`
	CallbackContext CallbackContext `json:"callbackContext,omitempty"`
	ResourceModel   *Membership     `json:"resourceModel,omitempty"`
	ResourceModels  []Membership    `json:"resourceModels,omitempty"`
}

func SuccessEvent(model *Membership) ProgressEvent {
	return ProgressEvent{Status: OperationStatusSuccess, ResourceModel: model}
}

func SuccessListEvent(models []Membership) ProgressEvent {
	if models == nil {
		models = []Membership{}
	}
	return ProgressEvent{Status: OperationStatusSuccess, ResourceModels: models}
}

func FailedEvent(code, message string) ProgressEvent {
	return ProgressEvent{Status: OperationStatusFailed, ErrorCode: code, Message: message}
}
