package components

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const holdStep = 50 * time.Millisecond

// HoldButton fires OnConfirmed once it has been held down for Hold.
// Releasing early or leaving the button resets the progress.
type HoldButton struct {
	widget.BaseWidget
	Text        string
	Hold        time.Duration
	OnConfirmed func()

	mu       sync.Mutex
	hovered  bool
	progress float64
	cancel   chan struct{}
}

// NewHoldButton creates a new HoldButton. A zero hold confirms on press.
func NewHoldButton(text string, hold time.Duration, onConfirmed func()) *HoldButton {
	b := &HoldButton{
		Text:        text,
		Hold:        hold,
		OnConfirmed: onConfirmed,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *HoldButton) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText(b.Text, theme.ForegroundColor())
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = theme.TextSize() * 1.5

	return &holdButtonRenderer{
		button:      b,
		text:        text,
		bg:          canvas.NewRectangle(theme.ButtonColor()),
		progressBar: canvas.NewRectangle(theme.PrimaryColor()),
	}
}

// Progress returns how far the current hold has got, from 0 to 1
func (b *HoldButton) Progress() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.progress
}

func (b *HoldButton) setProgress(p float64) {
	b.mu.Lock()
	b.progress = p
	b.mu.Unlock()
	fyne.Do(b.Refresh)
}

// Press starts a hold. Called on mouse down.
func (b *HoldButton) Press() {
	b.mu.Lock()
	if b.cancel != nil {
		b.mu.Unlock()
		return
	}
	cancel := make(chan struct{})
	b.cancel = cancel
	b.mu.Unlock()

	if b.Hold <= 0 {
		b.confirm(cancel)
		return
	}
	go b.run(cancel)
}

// Release aborts a hold in progress
func (b *HoldButton) Release() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		close(cancel)
		b.setProgress(0)
	}
}

func (b *HoldButton) run(cancel chan struct{}) {
	ticker := time.NewTicker(holdStep)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			p := float64(time.Since(start)) / float64(b.Hold)
			if p >= 1 {
				b.confirm(cancel)
				return
			}
			b.setProgress(p)
		}
	}
}

func (b *HoldButton) confirm(cancel chan struct{}) {
	b.mu.Lock()
	if b.cancel != cancel {
		b.mu.Unlock()
		return
	}
	b.cancel = nil
	b.mu.Unlock()

	b.setProgress(1)
	if b.OnConfirmed != nil {
		b.OnConfirmed()
	}
}

// Tapped implements fyne.Tappable
func (b *HoldButton) Tapped(*fyne.PointEvent) {}

// TappedSecondary implements fyne.SecondaryTappable
func (b *HoldButton) TappedSecondary(*fyne.PointEvent) {}

// MouseIn implements desktop.Hoverable
func (b *HoldButton) MouseIn(*desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

// MouseMoved implements desktop.Hoverable
func (b *HoldButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (b *HoldButton) MouseOut() {
	b.hovered = false
	b.Release()
	b.Refresh()
}

// MouseDown implements desktop.Mouseable
func (b *HoldButton) MouseDown(*desktop.MouseEvent) {
	b.Press()
}

// MouseUp implements desktop.Mouseable
func (b *HoldButton) MouseUp(*desktop.MouseEvent) {
	b.Release()
}

type holdButtonRenderer struct {
	button      *HoldButton
	text        *canvas.Text
	bg          *canvas.Rectangle
	progressBar *canvas.Rectangle
}

func (r *holdButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.text.Resize(size)
	r.layoutProgress(size)
}

func (r *holdButtonRenderer) layoutProgress(size fyne.Size) {
	// Fills from left to right
	r.progressBar.Resize(fyne.NewSize(size.Width*float32(r.button.Progress()), size.Height))
	r.progressBar.Move(fyne.NewPos(0, 0))
}

func (r *holdButtonRenderer) MinSize() fyne.Size {
	textSize := r.text.MinSize()
	return fyne.NewSize(
		fyne.Max(textSize.Width+theme.Padding()*4, 260),
		fyne.Max(textSize.Height+theme.Padding()*2, 72),
	)
}

func (r *holdButtonRenderer) Refresh() {
	r.text.Text = r.button.Text
	r.text.Color = theme.ForegroundColor()

	if r.button.hovered {
		r.bg.FillColor = theme.HoverColor()
	} else {
		r.bg.FillColor = theme.ButtonColor()
	}
	r.layoutProgress(r.bg.Size())

	r.bg.Refresh()
	r.progressBar.Refresh()
	r.text.Refresh()
}

func (r *holdButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.progressBar, r.text}
}

func (r *holdButtonRenderer) Destroy() {}

func (r *holdButtonRenderer) BackgroundColor() color.Color {
	return theme.ButtonColor()
}
