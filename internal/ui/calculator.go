package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workbench/internal/calc"
)

// calculatorView is the keypad calculator
type calculatorView struct {
	calc    *calc.Calculator
	display *canvas.Text
	buttons map[string]*widget.Button
}

// OpenCalculator opens the calculator window or raises the existing one
func (d *Desktop) OpenCalculator() {
	d.startMenu.Hide()
	title := d.localization.GetText(KeyCalculator)
	w, created := d.windows.Open(title, CalculatorSize)
	if !created {
		return
	}
	c := newCalculatorView(calc.NewCalculator(d.logger))
	w.SetContent(d.frame(title, c.content()))
}

func newCalculatorView(c *calc.Calculator) *calculatorView {
	v := &calculatorView{
		calc:    c,
		display: canvas.NewText("", theme.ForegroundColor()),
		buttons: make(map[string]*widget.Button),
	}
	v.display.TextSize = CalculatorText
	v.display.TextStyle = fyne.TextStyle{Monospace: true}
	v.display.Alignment = fyne.TextAlignTrailing

	for _, row := range calc.Keypad {
		for _, key := range row {
			key := key
			btn := widget.NewButton(key, func() { v.press(key) })
			if key == "=" {
				btn.Importance = widget.HighImportance
			}
			v.buttons[key] = btn
		}
	}
	clearBtn := widget.NewButton(calc.ClearKey, v.clear)
	clearBtn.Importance = widget.DangerImportance
	v.buttons[calc.ClearKey] = clearBtn
	return v
}

func (v *calculatorView) content() fyne.CanvasObject {
	keypad := container.NewGridWithColumns(len(calc.Keypad[0]))
	for _, row := range calc.Keypad {
		for _, key := range row {
			keypad.Add(v.buttons[key])
		}
	}
	display := container.NewPadded(v.display)
	return container.NewBorder(display, v.buttons[calc.ClearKey], nil, nil, keypad)
}

func (v *calculatorView) press(key string) {
	v.show(v.calc.Press(key))
}

func (v *calculatorView) clear() {
	v.show(v.calc.Clear())
}

func (v *calculatorView) show(text string) {
	v.display.Text = text
	v.display.Refresh()
}
