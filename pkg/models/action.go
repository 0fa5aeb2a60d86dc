package models

// ActionName identifies one entry of the fixed action vocabulary
type ActionName string

const (
	ActionNavigate            ActionName = "navigate"
	ActionTap                 ActionName = "aiTap"
	ActionInput               ActionName = "aiInput"
	ActionScroll              ActionName = "aiScroll"
	ActionKeyboardPress       ActionName = "aiKeyboardPress"
	ActionHover               ActionName = "aiHover"
	ActionWaitFor             ActionName = "aiWaitFor"
	ActionDoubleClick         ActionName = "aiDoubleClick"
	ActionRightClick          ActionName = "aiRightClick"
	ActionAI                  ActionName = "aiAction"
	ActionSetActiveTab        ActionName = "setActiveTab"
	ActionEvaluateJavaScript  ActionName = "evaluateJavaScript"
	ActionLogScreenshot       ActionName = "logScreenshot"
	ActionFreezePageContext   ActionName = "freezePageContext"
	ActionUnfreezePageContext ActionName = "unfreezePageContext"
	ActionRunYAML             ActionName = "runYaml"
	ActionSetAIActionContext  ActionName = "setAIActionContext"
	ActionRecordToReport      ActionName = "recordToReport"
	ActionGetLogContent       ActionName = "getLogContent"
)

// ActionNames lists every supported action in catalog order.
var ActionNames = []ActionName{
	ActionNavigate,
	ActionTap,
	ActionInput,
	ActionScroll,
	ActionKeyboardPress,
	ActionHover,
	ActionWaitFor,
	ActionDoubleClick,
	ActionRightClick,
	ActionAI,
	ActionSetActiveTab,
	ActionEvaluateJavaScript,
	ActionLogScreenshot,
	ActionFreezePageContext,
	ActionUnfreezePageContext,
	ActionRunYAML,
	ActionSetAIActionContext,
	ActionRecordToReport,
	ActionGetLogContent,
}

// ActionResult is the normalized outcome of a successful action
type ActionResult struct {
	Success   bool   `json:"success"`
	Action    string `json:"action,omitempty"`
	URL       string `json:"url,omitempty"`
	Target    string `json:"target,omitempty"`
	Value     string `json:"value,omitempty"`
	Direction string `json:"direction,omitempty"`
	Key       string `json:"key,omitempty"`
	Assertion string `json:"assertion,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
	TabID     *int   `json:"tabId,omitempty"`
	Title     string `json:"title,omitempty"`
	Context   string `json:"context,omitempty"`
	Content   string `json:"content,omitempty"`
	MsgType   string `json:"msgType,omitempty"`
	Level     string `json:"level,omitempty"`
	Result    any    `json:"result,omitempty"`
}
