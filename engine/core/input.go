package core

type Input struct {
	keys           map[Key]bool
	buttons        map[int]bool
	mouseX, mouseY float64
	scrollY        float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}, buttons: map[int]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventScroll:
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool         { return in.keys[k] }
func (in *Input) IsMouseButtonDown(b int) bool { return in.buttons[b] }
func (in *Input) Mouse() (float64, float64)    { return in.mouseX, in.mouseY }

// ConsumeScroll returns accumulated scroll since the last call and resets it.
func (in *Input) ConsumeScroll() float64 {
	s := in.scrollY
	in.scrollY = 0
	return s
}
