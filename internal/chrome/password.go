package chrome

const (
	InputPassword = "password"
	InputText     = "text"

	IconHidden  = "👁️"
	IconVisible = "🙈"
)

// PasswordToggle flips a password input between masked and plain text.
type PasswordToggle struct {
	Target string `json:"target"`
	Type   string `json:"type"`
	Icon   string `json:"icon"`
}

func NewPasswordToggle(target string) *PasswordToggle {
	return &PasswordToggle{Target: target, Type: InputPassword, Icon: IconHidden}
}

func (p *PasswordToggle) Toggle() {
	if p.Type == InputPassword {
		p.Type = InputText
		p.Icon = IconVisible
		return
	}
	p.Type = InputPassword
	p.Icon = IconHidden
}
