package constant

const (
	// SystemPrompt is sent with every completion request.
	SystemPrompt = "Kamu adalah asisten AI yang ramah dan informatif."

	// DefaultSessionTitle is the placeholder until the first message names it.
	DefaultSessionTitle = "Chat Baru"

	TitleMaxRunes   = 40
	PreviewMaxRunes = 80

	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)
