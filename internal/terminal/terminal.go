package terminal

import (
	"fmt"
	"io"
	"strings"

	"order_viewer/internal/ui"
	"order_viewer/internal/view"
)

const defaultCreateLabel = "Create random order"

// Terminal реализует поверхности отображения поверх текстового вывода.
// Терминал только дописывает строки, поэтому очистка представления
// сводится к разделителю между результатами.
type Terminal struct {
	out io.Writer

	searchEnabled bool
	input         string
	createLabel   string
	createBusy    bool
}

// New создает терминальную поверхность поверх указанного вывода
func New(out io.Writer) *Terminal {
	return &Terminal{
		out:           out,
		searchEnabled: true,
		createLabel:   defaultCreateLabel,
	}
}

// Input возвращает текущее содержимое поля ввода идентификатора
func (t *Terminal) Input() string {
	return t.input
}

// SearchEnabled сообщает, доступен ли сейчас поиск
func (t *Terminal) SearchEnabled() bool {
	return t.searchEnabled
}

// CreateLabel возвращает текущую подпись кнопки создания заказа
func (t *Terminal) CreateLabel() string {
	return t.createLabel
}

// ShowOrder печатает все секции документа заказа
func (t *Terminal) ShowOrder(doc view.Document) {
	for _, section := range doc.Sections {
		t.writeSection(section)
	}
}

// ShowError печатает сообщение об ошибке
func (t *Terminal) ShowError(message string) {
	fmt.Fprintf(t.out, "\nERROR: %s\n", message)
}

// ClearView отделяет новый результат от предыдущего
func (t *Terminal) ClearView() {
	fmt.Fprintln(t.out, strings.Repeat("-", 48))
}

// ShowModal печатает содержимое модального окна с заголовком
func (t *Terminal) ShowModal(title string, body view.Section) {
	fmt.Fprintf(t.out, "\n┌─ %s\n", title)
	for _, f := range body.Fields {
		if f.Value == "" {
			fmt.Fprintf(t.out, "│  %s\n", f.Label)
			continue
		}
		fmt.Fprintf(t.out, "│  %s: %s\n", f.Label, f.Value)
	}
	fmt.Fprintln(t.out, "└─")
}

// CloseModal в терминале ничего не сворачивает: окно уже напечатано
func (t *Terminal) CloseModal() {}

// Notify печатает всплывающее уведомление с уровнем
func (t *Terminal) Notify(level ui.Level, message string) {
	fmt.Fprintf(t.out, "\n[%s] %s\n", level, message)
}

// SetSearchEnabled блокирует или разблокирует поиск
func (t *Terminal) SetSearchEnabled(enabled bool) {
	t.searchEnabled = enabled
}

// SetSearchInput подставляет идентификатор в поле ввода
func (t *Terminal) SetSearchInput(orderUID string) {
	t.input = orderUID
	fmt.Fprintf(t.out, "\n> order ID: %s\n", orderUID)
}

// LockCreate блокирует кнопку создания и меняет ее подпись
func (t *Terminal) LockCreate(label string) {
	t.createBusy = true
	t.createLabel = label
}

// UnlockCreate возвращает кнопке создания исходную подпись
func (t *Terminal) UnlockCreate() {
	t.createBusy = false
	t.createLabel = defaultCreateLabel
}

func (t *Terminal) writeSection(section view.Section) {
	fmt.Fprintf(t.out, "\n=== %s ===\n", section.Title)

	for _, f := range section.Fields {
		fmt.Fprintf(t.out, "  %-17s %s\n", f.Label+":", f.Value)
	}

	for _, item := range section.Items {
		fmt.Fprintf(t.out, "  * %s — %s\n", item.Name, item.Price)
		for _, f := range item.Details {
			fmt.Fprintf(t.out, "      %-13s %s\n", f.Label+":", f.Value)
		}
		fmt.Fprintf(t.out, "      %-13s %s [%s]\n", "Status:", item.Status.Label, item.Status.Class)
	}
}
