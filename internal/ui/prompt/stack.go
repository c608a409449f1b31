package prompt

// Stack is the modal prompt stack. The surrounding window manager (the
// UI model) watches it through change callbacks: a prompt is mounted
// while it sits on the stack and unmounted when popped.
//
// The stack is passed by reference to whoever needs it; there is no
// package-level instance.
type Stack struct {
	items  []*Controller
	nextID int
	subs   map[int]func()
}

// NewStack creates an empty prompt stack
func NewStack() *Stack {
	return &Stack{subs: make(map[int]func())}
}

// Push puts a controller on top of the stack
func (s *Stack) Push(c *Controller) {
	s.items = append(s.items, c)
	s.notify()
}

// Pop removes and returns the top controller, or nil when empty
func (s *Stack) Pop() *Controller {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.notify()
	return top
}

// Remove takes a specific controller out of the stack, wherever it sits
func (s *Stack) Remove(c *Controller) {
	for i, item := range s.items {
		if item == c {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notify()
			return
		}
	}
}

// Top returns the top controller without removing it, or nil when empty
func (s *Stack) Top() *Controller {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Len returns the stack depth
func (s *Stack) Len() int {
	return len(s.items)
}

// OnChange registers a callback invoked after every push/pop/remove.
// Returns an unsubscribe function.
func (s *Stack) OnChange(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Stack) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
