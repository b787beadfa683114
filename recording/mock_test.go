package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// mockBackend records the calls it receives as short strings.
type mockBackend struct {
	name       string
	width      int
	height     int
	beginErr   error
	theme      Theme
	calls      []string
	beginCalls int
	endCalls   int
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	if b.beginErr != nil {
		return b.beginErr
	}
	b.width, b.height = width, height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) SetTheme(t Theme) { b.theme = t }

func (b *mockBackend) DefineGradient(g *LinearGradientBrush) {
	b.calls = append(b.calls, "gradient:"+g.ID)
}

func (b *mockBackend) DefineClip(c Clip) {
	b.calls = append(b.calls, "clip:"+c.ID)
}

func (b *mockBackend) BeginGroup(g Group) {
	b.calls = append(b.calls, "group:"+g.Class)
}

func (b *mockBackend) EndGroup() {
	b.calls = append(b.calls, "end")
}

func (b *mockBackend) FillPath(p *gg.Path, s Style) {
	b.calls = append(b.calls, fmt.Sprintf("fill:%s:%d", s.Class, len(p.Elements())))
}

func (b *mockBackend) StrokePath(p *gg.Path, s Style) {
	b.calls = append(b.calls, fmt.Sprintf("stroke:%s:%d", s.Class, len(p.Elements())))
}

func (b *mockBackend) DrawCircle(c Circle) {
	b.calls = append(b.calls, "circle:"+c.Style.Class)
}

func (b *mockBackend) DrawRect(r Box) {
	b.calls = append(b.calls, "rect:"+r.Style.Class)
}

func (b *mockBackend) DrawText(t Text) {
	b.calls = append(b.calls, "text:"+t.Text)
}

var errBeginFailed = errors.New("begin failed")

var _ ThemedBackend = (*mockBackend)(nil)
