package game

import (
	"errors"
	"fmt"
	"time"

	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"

	"github.com/golang/glog"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Snapshot is a read-only copy of what the renderer needs.
type Snapshot struct {
	Body      []types.Point
	Direction types.Point
	Food      types.Point
	Score     int
	HighScore int
	Running   bool
	Interval  time.Duration
	RoundID   string
}

// Game runs rounds of snake on a single goroutine. It is not safe for
// concurrent use.
type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	food         *entity.Food
	state        State
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	sink         EventSink
}

// NewGame builds a running round. sink may be nil.
func NewGame(cfg Config, sink EventSink) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	snake := entity.NewSnake()
	foodMgr := manager.NewFoodManager(cfg.Grid, cfg.Seed)
	food, err := foodMgr.NewFood(snake.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to place initial food: %w", err)
	}

	g := &Game{
		Grid:         cfg.Grid,
		snake:        snake,
		food:         food,
		state:        Running,
		collisionMgr: manager.NewCollisionManager(cfg.Grid),
		foodMgr:      foodMgr,
		stateMgr:     manager.NewStateManager(cfg.Difficulty),
		sink:         sink,
	}
	glog.Infof("Round %s started on %dx%d grid", g.stateMgr.CurrentRound().ID, cfg.Grid.Width, cfg.Grid.Height)
	return g, nil
}

// Tick advances the snake one cell and runs the food, edge and tail checks
// in that order. It does nothing while the game is stopped.
func (g *Game) Tick() error {
	if g.state != Running {
		return nil
	}

	g.snake.Advance()

	if g.collisionMgr.IsFoodCollision(g.snake, g.food) {
		if err := g.eat(); err != nil {
			return err
		}
		if g.state != Running {
			return nil
		}
	}

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != manager.NoCollision {
		return g.gameOver(collision)
	}
	return nil
}

func (g *Game) eat() error {
	head := g.snake.Head()
	err := g.foodMgr.Place(g.food, g.snake.Body)
	if errors.Is(err, manager.ErrBoardFull) {
		g.stateMgr.AddPoint()
		return g.gameOver(manager.BoardFull)
	}
	if err != nil {
		return fmt.Errorf("failed to place food: %w", err)
	}

	g.snake.Grow()
	spedUp := g.stateMgr.AddPoint()
	glog.V(1).Infof("Ate food at %v, score %d, new food at %v", head, g.stateMgr.Score(), g.food.Position)
	g.emit(Event{Type: EventFoodEaten, Score: g.stateMgr.Score(), Head: head})

	if spedUp {
		glog.V(1).Infof("Speed up: tick interval now %v", g.stateMgr.Interval())
		g.emit(Event{Type: EventSpeedUp, Score: g.stateMgr.Score(), Head: head})
	}
	return nil
}

// gameOver ends the round: best score, score and difficulty are settled,
// the snake and food go back to a fresh layout and the game stops.
func (g *Game) gameOver(cause manager.CollisionType) error {
	head := g.snake.Head()
	record := g.stateMgr.EndRound(cause)

	g.snake.Reset()
	err := g.foodMgr.Place(g.food, g.snake.Body)
	g.state = Stopped

	glog.Infof("Round %s over (%v at %v): score %d, best %d, played %s",
		record.ID, cause, head, record.Score, g.stateMgr.HighScore(), record.Duration().Round(time.Millisecond))

	eventType := EventCollided
	if cause == manager.BoardFull {
		eventType = EventBoardFull
	}
	g.emit(Event{Type: eventType, Round: record.ID, Score: record.Score, Head: head, Cause: cause.String()})

	if err != nil {
		return fmt.Errorf("failed to place food after round %s: %w", record.ID, err)
	}
	return nil
}

// Restart moves a stopped game back to running. Everything else was
// already reset when the previous round ended.
func (g *Game) Restart() bool {
	if g.state != Stopped {
		return false
	}
	g.state = Running
	round := g.stateMgr.BeginRound()
	glog.Infof("Round %s started", round.ID)
	g.emit(Event{Type: EventRoundStarted, Round: round.ID})
	return true
}

// SetDirection turns the snake unless d reverses it. The run state is
// untouched.
func (g *Game) SetDirection(d types.Direction) bool {
	changed := g.snake.SetDirection(d.ToPoint())
	if changed {
		glog.V(2).Infof("Direction: %v", d)
	}
	return changed
}

// Handle applies an input command. A direction key also restarts a
// stopped game, after the turn is applied.
func (g *Game) Handle(cmd Command) {
	if d, ok := cmd.Direction(); ok {
		g.SetDirection(d)
	}
	if g.state == Stopped {
		g.Restart()
	}
}

func (g *Game) emit(e Event) {
	if e.Round == "" {
		e.Round = g.stateMgr.CurrentRound().ID
	}
	if g.sink != nil {
		g.sink.Notify(e)
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Running() bool {
	return g.state == Running
}

// Interval is the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.stateMgr.Interval()
}

func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return Snapshot{
		Body:      body,
		Direction: g.snake.Direction,
		Food:      g.food.Position,
		Score:     g.stateMgr.Score(),
		HighScore: g.stateMgr.HighScore(),
		Running:   g.state == Running,
		Interval:  g.stateMgr.Interval(),
		RoundID:   g.stateMgr.CurrentRound().ID,
	}
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// SaveStats writes the session report to filename.
func (g *Game) SaveStats(filename string) error {
	return g.stateMgr.SaveStats(filename)
}
