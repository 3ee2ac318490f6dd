package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cardhall/internal/combat"
	"github.com/samdwyer/cardhall/internal/game"
)

const maxLogLines = 200

// enemyReply is posted to the event loop when the opponent should act.
type enemyReply struct{}

// App is the terminal front end. It reads commands, shows results and, after
// each player attack, schedules the opponent's reply after a short delay.
// All game calls happen on the event loop goroutine.
type App struct {
	screen     *Screen
	renderer   *Renderer
	game       *game.Game
	enemyDelay time.Duration

	log      []string
	input    []rune
	status   string
	awaiting bool // an enemy reply is scheduled
	running  bool
}

// NewApp creates a front end for g on screen.
func NewApp(screen *Screen, g *game.Game, enemyDelay time.Duration) *App {
	a := &App{
		screen:     screen,
		renderer:   NewRenderer(screen),
		game:       g,
		enemyDelay: enemyDelay,
		running:    true,
	}
	a.log = []string{g.Look().Message}
	return a
}

// Run executes the main loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer a.screen.Close()
	defer close(done)

	go a.wakeOnCancel(ctx, done)

	for a.running {
		a.renderer.Render(a.game.Snapshot(), a.log, string(a.input), a.status)

		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.handleEvent(ctx, ev)

		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

// wakeOnCancel unblocks PollEvent when ctx is cancelled. It returns as soon
// as either ctx or done is closed.
func (a *App) wakeOnCancel(ctx context.Context, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		_ = a.screen.Interrupt(nil)
	case <-done:
	}
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(enemyReply); ok {
			a.playEnemyReply(ctx)
		}
	}
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
	case tcell.KeyEnter:
		line := string(a.input)
		a.input = a.input[:0]
		a.Submit(ctx, line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
}

// Submit runs one line of input as if typed at the prompt.
func (a *App) Submit(ctx context.Context, line string) {
	if line == "" {
		return
	}
	if line == "quit" || line == "exit" {
		a.running = false
		return
	}
	if a.awaiting {
		a.status = "Your opponent is about to move..."
		return
	}
	a.status = ""

	res := a.game.Execute(ctx, line)
	a.apply("> "+line, res)

	if enemyDue(res) {
		a.scheduleEnemyReply(ctx)
	}
}

// apply shows a result, reacting to its event.
func (a *App) apply(echo string, res game.Result) {
	if res.Event != nil && res.Event.Type == game.EventRoomChanged {
		a.log = a.log[:0]
	}
	if echo != "" {
		a.log = append(a.log, echo)
	}
	a.log = append(a.log, res.Message)
	if len(a.log) > maxLogLines {
		a.log = a.log[len(a.log)-maxLogLines:]
	}
}

// enemyDue reports whether res left the battle waiting on the opponent.
func enemyDue(res game.Result) bool {
	if res.Event == nil || res.Event.Type != game.EventBattleTurn {
		return false
	}
	p, ok := res.Event.Payload.(game.BattleTurnPayload)
	return ok && p.Next == combat.SideEnemy.String()
}

func (a *App) scheduleEnemyReply(ctx context.Context) {
	if a.enemyDelay <= 0 {
		a.playEnemyReply(ctx)
		return
	}
	a.awaiting = true
	time.AfterFunc(a.enemyDelay, func() {
		_ = a.screen.Interrupt(enemyReply{})
	})
}

func (a *App) playEnemyReply(ctx context.Context) {
	a.awaiting = false
	if !a.game.Player().InBattle() {
		return
	}
	a.apply("", a.game.PlayTurn(ctx))
}

// Log returns the lines currently shown.
func (a *App) Log() []string {
	return a.log
}

// Running reports whether the loop should continue.
func (a *App) Running() bool {
	return a.running
}
