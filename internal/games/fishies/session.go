package fishies

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-fish/internal/config"
	"github.com/vovakirdan/flappy-fish/internal/core"
)

// DefaultPollDelay is how long the raw loop sleeps after an empty
// non-blocking read.
const DefaultPollDelay = time.Millisecond

// Input is the event a tick consumes: either a single key or a completed
// command line.
type Input struct {
	Key     byte
	Command string
	Line    bool
}

// KeyInput wraps a single key.
func KeyInput(ch byte) Input {
	return Input{Key: ch}
}

// LineInput wraps a completed command line.
func LineInput(s string) Input {
	return Input{Command: s, Line: true}
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Ticks             uint
	BackgroundChanged bool // frontends must switch blocking mode
	Rescued           bool // a power-up was collected
	Hit               bool
}

// Theme colors each entity.
type Theme struct {
	Fish    core.Color
	Pipe    core.Color
	PowerUp core.Color
	Text    core.Color
}

// DefaultTheme returns the stock colors.
func DefaultTheme() Theme {
	return Theme{
		Fish:    core.ColorBlue,
		Pipe:    core.ColorGreen,
		PowerUp: core.ColorRed,
		Text:    core.ColorDefault,
	}
}

// Options configures a Session. Zero fields get defaults.
type Options struct {
	Keys       Keys
	Theme      Theme
	Rand       core.Rand
	Clock      core.Clock
	Logger     *log.Logger
	Background bool          // start with background processing on
	PollDelay  time.Duration // sleep between empty non-blocking reads
}

// OptionsFromConfig builds session options from a loaded config and CLI
// runtime settings. Logger and Clock are left for the caller.
func OptionsFromConfig(cfg config.Config, rt core.RuntimeConfig) (Options, error) {
	theme := DefaultTheme()
	for _, c := range []struct {
		dst  *core.Color
		name string
		key  string
	}{
		{&theme.Fish, cfg.Theme.Fish, "fish"},
		{&theme.Pipe, cfg.Theme.Pipe, "pipe"},
		{&theme.PowerUp, cfg.Theme.PowerUp, "power_up"},
		{&theme.Text, cfg.Theme.Text, "text"},
	} {
		color, err := core.ParseColor(c.name)
		if err != nil {
			return Options{}, fmt.Errorf("fishies: theme %s: %w", c.key, err)
		}
		*c.dst = color
	}

	return Options{
		Keys:       KeysFromConfig(cfg.Keys),
		Theme:      theme,
		Rand:       core.NewRand(rt.Seed),
		Background: !rt.Foreground,
		PollDelay:  DefaultPollDelay,
	}, nil
}

// Session is one game from bootstrap to quit or hit. It owns the GameState
// and is the only thing that mutates it.
type Session struct {
	state *GameState
	ctrl  *Controller
	sched *Scheduler
	ramp  Ramp

	keys      Keys
	theme     Theme
	rng       core.Rand
	clock     core.Clock
	logger    *log.Logger
	pollDelay time.Duration
}

// NewSession creates a session with one pipe already spawned and the fish
// waiting for its create key.
func NewSession(opts Options) *Session {
	if opts.Keys == (Keys{}) {
		opts.Keys = DefaultKeys()
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}
	if opts.Rand == nil {
		opts.Rand = core.NewRand(0)
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ramp := DefaultRamp()
	return &Session{
		state:     NewGameState(opts.Rand, ramp),
		ctrl:      NewController(opts.Keys, opts.Background),
		sched:     NewScheduler(opts.Clock.Now()),
		ramp:      ramp,
		keys:      opts.Keys,
		theme:     opts.Theme,
		rng:       opts.Rand,
		clock:     opts.Clock,
		logger:    opts.Logger,
		pollDelay: opts.PollDelay,
	}
}

// BootstrapInput is the input of the very first tick: it creates the fish.
func (s *Session) BootstrapInput() Input {
	return KeyInput(s.keys.Create)
}

// Start runs the bootstrap tick now and starts the first interval.
func (s *Session) Start() TickResult {
	s.sched.Reset(s.clock.Now())
	return s.Tick(s.BootstrapInput())
}

// Poll runs a tick if the scheduler says one is due at now.
func (s *Session) Poll(now time.Time, in Input) (TickResult, bool) {
	if s.Done() {
		return TickResult{Ticks: s.state.Ticks, Hit: s.state.Hit}, false
	}
	if !s.sched.Due(now, s.state.TickInterval, s.ctrl.Background()) {
		return TickResult{}, false
	}
	return s.Tick(in), true
}

// Tick advances the game by exactly one step using in.
func (s *Session) Tick(in Input) TickResult {
	st := s.state
	if s.Done() {
		return TickResult{Ticks: st.Ticks, Hit: st.Hit}
	}

	st.Ticks++
	res := TickResult{Ticks: st.Ticks}
	mode := s.ctrl.Mode()

	// Controller first: it may quit or change the read mode.
	act := ActionNone
	if in.Line {
		res.BackgroundChanged = s.ctrl.HandleCommand(in.Command)
	} else {
		act, res.BackgroundChanged = s.ctrl.HandleKey(in.Key)
	}

	s.logger.Debug("tick",
		"ticks", st.Ticks,
		"background", s.ctrl.Background(),
		"interval", st.TickInterval,
		"key", in.Key,
		"command", in.Command,
	)

	if m := s.ctrl.Mode(); m != mode {
		s.logger.Info("input mode changed", "from", mode, "to", m, "background", s.ctrl.Background())
	} else if res.BackgroundChanged {
		s.logger.Info("background processing toggled", "background", s.ctrl.Background())
	}

	if s.ctrl.Quitting() {
		s.logger.Info("quit requested", "ticks", st.Ticks, "score", st.Score)
		return res
	}

	switch act {
	case ActionCreate:
		if !st.Fish.Alive {
			st.Fish = NewFish()
		}
	case ActionUp:
		if st.Fish.Alive {
			st.Fish.Move(DirUp)
		}
	case ActionDown:
		if st.Fish.Alive {
			st.Fish.Move(DirDown)
		}
	}

	advanceWorld(st, s.rng, s.ramp)

	res.Rescued = resolveCollisions(st, s.ramp)
	if res.Rescued {
		s.logger.Info("power-up collected", "ticks", st.Ticks, "interval", st.TickInterval)
	}

	res.Hit = st.Hit
	if st.Hit {
		s.logger.Info("game over", "ticks", st.Ticks, "score", st.Score)
	}
	return res
}

// Intercept lets the frontend end the session on a quit key the moment it
// is read.
func (s *Session) Intercept(ch byte) bool {
	if !s.ctrl.Intercept(ch) {
		return false
	}
	s.logger.Info("quit requested", "ticks", s.state.Ticks, "score", s.state.Score)
	return true
}

// Feed passes one character of command-line input to the controller.
func (s *Session) Feed(ch byte) (string, bool) {
	return s.ctrl.Feed(ch)
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.ctrl.Quitting() || s.state.Hit
}

// Score returns the current score.
func (s *Session) Score() uint {
	return s.state.Score
}

// Ticks returns the number of ticks run.
func (s *Session) Ticks() uint {
	return s.state.Ticks
}

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration {
	return s.state.TickInterval
}

// Mode returns the controller's input mode.
func (s *Session) Mode() Mode {
	return s.ctrl.Mode()
}

// Background reports whether background processing is on.
func (s *Session) Background() bool {
	return s.ctrl.Background()
}

// Hit reports whether the fish hit a pipe.
func (s *Session) Hit() bool {
	return s.state.Hit
}

// Fish returns a copy of the fish.
func (s *Session) Fish() Fish {
	return s.state.Fish
}

// Line returns the command line being typed.
func (s *Session) Line() string {
	return s.ctrl.Line()
}

// Keys returns the active key bindings.
func (s *Session) Keys() Keys {
	return s.keys
}

// Theme returns the entity colors.
func (s *Session) Theme() Theme {
	return s.theme
}

// Remaining returns how long until the next background tick.
func (s *Session) Remaining() time.Duration {
	return s.sched.Remaining(s.clock.Now(), s.state.TickInterval)
}

// Now reads the session clock.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Summary is the one-line result printed after the game.
func (s *Session) Summary() string {
	if s.state.Hit {
		return fmt.Sprintf("Game over: score %d after %d ticks", s.state.Score, s.state.Ticks)
	}
	return fmt.Sprintf("Quit: score %d after %d ticks", s.state.Score, s.state.Ticks)
}
