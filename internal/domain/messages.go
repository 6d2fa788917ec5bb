package domain

const Currency = "₽"

// Уведомления, которые видит пользователь
const (
	MsgProductDeleted     = "Товар удален"
	MsgPhotoUploaded      = "Фото загружено"
	MsgHintSaved          = "Подсказка сохранена"
	MsgSKUSaved           = "Артикул сохранен"
	MsgSellingPriceFixed  = "Цена продажи зафиксирована"
	MsgPurchasePriceFixed = "Цена покупки зафиксирована"
	MsgPhotoReadFailed    = "Не удалось загрузить фото"
)

// Надписи экрана
const (
	LabelHint              = "Подсказка"
	LabelHintSet           = "Подсказка ✓"
	LabelSKUPlaceholder    = "Артикул товара"
	LabelSellingPrice      = "Цена продажи"
	LabelPurchasePrice     = "Цена покупки"
	LabelSellingPriceSet   = "Продажа: %s " + Currency
	LabelPurchasePriceSet  = "Покупка: %s " + Currency
	LabelMargin            = "Маржа:"
	EmptyNoProducts        = `Нажмите "Добавить товар" чтобы начать`
	EmptyNothingFound      = "Товары не найдены"
	SearchPlaceholder      = "Поиск по артикулу или названию товара..."
	LabelAddProduct        = "Добавить товар"
	PhotoDialogNoPhotoText = "Фото не загружено"
)

// ConfirmMessage возвращает уведомление об успешном сохранении поля.
// Для полей без уведомления возвращается пустая строка.
func ConfirmMessage(f Field) string {
	switch f {
	case FieldPhoto:
		return MsgPhotoUploaded
	case FieldHint:
		return MsgHintSaved
	case FieldSKU:
		return MsgSKUSaved
	case FieldSellingPrice:
		return MsgSellingPriceFixed
	case FieldPurchasePrice:
		return MsgPurchasePriceFixed
	default:
		return ""
	}
}

// DialogTitle возвращает заголовок диалога редактирования поля.
func DialogTitle(f Field) string {
	switch f {
	case FieldPhoto:
		return "Фото товара"
	case FieldHint:
		return "Где найти товар"
	case FieldSKU:
		return "Артикул товара"
	case FieldSellingPrice:
		return "Цена продажи"
	case FieldPurchasePrice:
		return "Цена покупки"
	default:
		return ""
	}
}

// DialogPlaceholder возвращает подсказку в поле ввода диалога.
func DialogPlaceholder(f Field) string {
	switch f {
	case FieldHint:
		return "Введите подсказку где найти этот товар..."
	case FieldSKU:
		return "Введите артикул товара..."
	case FieldSellingPrice:
		return "Введите цену продажи..."
	case FieldPurchasePrice:
		return "Введите цену покупки..."
	default:
		return ""
	}
}
