package domain

import "github.com/DRSN-tech/inventory-view/pkg/e"

// EditMode - способ редактирования полей карточки
type EditMode string

const (
	// EditModeStaged - у каждого поля свой диалог, изменение записывается только после "Принять".
	EditModeStaged EditMode = "staged"
	// EditModeInline - поле записывается сразу при изменении.
	EditModeInline EditMode = "inline"
)

func ParseEditMode(s string) (EditMode, error) {
	switch EditMode(s) {
	case EditModeStaged, EditModeInline:
		return EditMode(s), nil
	default:
		return "", e.Wrap(s, e.ErrUnknownEditMode)
	}
}
