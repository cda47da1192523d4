// Package player orchestrates engine operations per player: session
// caching, round sequencing, clash settlement and snapshot
// checkpointing against the store.
package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pantheonhq/soulengine/internal/content"
	"github.com/pantheonhq/soulengine/internal/engine"
	"github.com/pantheonhq/soulengine/internal/store"
)

const (
	baseWinChance = 0.5
	maxWinChance  = 0.95
	payoutFactor  = 2

	// Boon kinds the round loop consults. Content may define more;
	// those only matter to whatever flow applies them.
	boonFervor  engine.BoonKind = "fervor"
	boonFortune engine.BoonKind = "fortune"
)

// Service owns the live player sessions. Each session is a
// single-writer engine.State guarded by its own mutex, so one mutation
// completes before the next begins, per player.
type Service struct {
	store store.SnapshotStore
	defs  *content.Definitions

	// Injected for deterministic tests.
	now  func() time.Time
	roll func() float64
	pick func(n int) int

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu    sync.Mutex
	state *engine.State
}

func New(st store.SnapshotStore, defs *content.Definitions) *Service {
	return &Service{
		store:    st,
		defs:     defs,
		now:      time.Now,
		roll:     rand.Float64,
		pick:     rand.IntN,
		sessions: make(map[string]*session),
	}
}

// CreatePlayer mints a new player with default state and writes its
// first snapshot.
func (s *Service) CreatePlayer(ctx context.Context) (string, error) {
	id := uuid.NewString()

	sess := &session{state: s.defs.NewState()}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	err := s.checkpoint(ctx, id, sess.state)
	if err != nil {
		return "", fmt.Errorf("initial snapshot: %w", err)
	}

	slog.Info("player created", "player", id)

	return id, nil
}

// getSession returns the live session for a player, rehydrating it from
// the store on first touch. A malformed snapshot restores as defaults;
// a missing one means the player does not exist.
func (s *Service) getSession(ctx context.Context, id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if ok {
		return sess, nil
	}

	raw, err := s.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}

		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	sess = &session{state: store.Decode(raw, s.defs.NewState)}
	s.sessions[id] = sess

	return sess, nil
}

// apply runs fn against the player's state, logs the emitted events and
// checkpoints the snapshot. The snapshot write is best-effort: a failed
// checkpoint loses durability, not the in-memory mutation.
func (s *Service) apply(ctx context.Context, id string, fn func(*engine.State) error) error {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	err = fn(sess.state)

	for _, ev := range sess.state.TakeEvents() {
		slog.Info("engine event", "player", id, "event", ev)
	}

	if err != nil {
		return err
	}

	cerr := s.checkpoint(ctx, id, sess.state)
	if cerr != nil {
		slog.Warn("checkpoint failed", "player", id, "error", cerr)
	}

	return nil
}

// read runs fn against the player's state without checkpointing.
func (s *Service) read(ctx context.Context, id string, fn func(*engine.State)) error {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	fn(sess.state)

	return nil
}

func (s *Service) checkpoint(ctx context.Context, id string, st *engine.State) error {
	doc, err := store.Encode(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	err = s.store.Save(ctx, id, doc)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

// View assembles the read-only projection for renderers.
func (s *Service) View(ctx context.Context, id string) (View, error) {
	var v View

	err := s.read(ctx, id, func(st *engine.State) {
		v = View{
			ID:               id,
			Balance:          st.Balance,
			Cult:             st.Cult,
			Boons:            append([]engine.Boon{}, st.Boons...),
			Quests:           append([]engine.Quest{}, st.Quests...),
			BlessingEligible: st.BlessingEligible(engine.DayID(s.now())),
			GamesPlayed:      st.GamesPlayed,
			TotalWagered:     st.TotalWagered,
			TotalWon:         st.TotalWon,
			CheaterPoints:    st.CheaterPoints,
		}

		for _, god := range s.defs.Pantheon() {
			rec := st.Devotion[god]
			v.Devotion = append(v.Devotion, GodStanding{
				God:      god,
				Name:     s.defs.GodName(god),
				Devotion: rec.Devotion,
				Level:    st.DevotionLevel(god),
				GamesWon: rec.GamesWon,
			})
		}
	})
	if err != nil {
		return View{}, err
	}

	return v, nil
}

func (s *Service) Wager(ctx context.Context, id string, amount int64) error {
	return s.apply(ctx, id, func(st *engine.State) error {
		return st.Wager(amount)
	})
}

func (s *Service) Credit(ctx context.Context, id string, amount int64) error {
	return s.apply(ctx, id, func(st *engine.State) error {
		return st.Credit(amount)
	})
}

// PlayRound runs one wager round against a deity: debit the wager, roll
// the outcome under the fortune boon, pay out under the fervor boon,
// record devotion, advance that deity's quests on a win, then tick boon
// lifetimes exactly once.
func (s *Service) PlayRound(ctx context.Context, id string, god engine.GodID, wager int64) (RoundResult, error) {
	var res RoundResult

	err := s.apply(ctx, id, func(st *engine.State) error {
		if !st.KnownGod(god) {
			return engine.ErrUnknownGod
		}

		// Multipliers are read before the tick so a boon applied with
		// duration 1 still covers this round.
		chance := min(baseWinChance+st.EffectivePotency(boonFortune), maxWinChance)
		fervor := st.EffectivePotency(boonFervor)

		err := st.Wager(wager)
		if err != nil {
			return err
		}

		var won int64
		if s.roll() < chance {
			won = int64(float64(wager) * payoutFactor * (1 + fervor))
		}

		err = st.RecordOutcome(god, wager, won)
		if err != nil {
			return err
		}

		if won > wager {
			st.AdvanceQuestsFor(god)
		}

		err = st.Credit(won)
		if err != nil {
			return err
		}

		st.TickBoons()

		res = RoundResult{
			God:      god,
			Wagered:  wager,
			Won:      won,
			Balance:  st.Balance,
			Devotion: st.Devotion[god].Devotion,
			Level:    st.DevotionLevel(god),
		}

		return nil
	})
	if err != nil {
		return RoundResult{}, err
	}

	return res, nil
}

func (s *Service) JoinCult(ctx context.Context, id string, god engine.GodID) error {
	return s.apply(ctx, id, func(st *engine.State) error {
		return st.JoinCult(god)
	})
}

func (s *Service) ApplyBoon(ctx context.Context, id string, kind engine.BoonKind, duration int, potency float64) error {
	if !s.defs.HasBoonKind(kind) {
		return ErrUnknownBoonKind
	}

	return s.apply(ctx, id, func(st *engine.State) error {
		return st.ApplyBoon(kind, duration, potency)
	})
}

func (s *Service) BoonPotency(ctx context.Context, id string, kind engine.BoonKind) (float64, error) {
	if !s.defs.HasBoonKind(kind) {
		return 0, ErrUnknownBoonKind
	}

	var potency float64

	err := s.read(ctx, id, func(st *engine.State) {
		potency = st.EffectivePotency(kind)
	})
	if err != nil {
		return 0, err
	}

	return potency, nil
}

func (s *Service) ClaimQuest(ctx context.Context, id, questID string) (engine.ClaimResult, error) {
	var res engine.ClaimResult

	err := s.apply(ctx, id, func(st *engine.State) error {
		res = st.ClaimQuest(questID)
		return nil
	})
	if err != nil {
		return "", err
	}

	return res, nil
}

// ClaimBlessing claims the once-per-day bonus for the current UTC day.
func (s *Service) ClaimBlessing(ctx context.Context, id string) (BlessingOutcome, error) {
	var out BlessingOutcome

	err := s.apply(ctx, id, func(st *engine.State) error {
		today := engine.DayID(s.now())
		res := st.ClaimBlessing(today, s.defs.BlessingAmount)

		out = BlessingOutcome{
			Result:  res,
			Day:     today,
			Balance: st.Balance,
		}
		if res == engine.BlessingClaimed {
			out.Amount = s.defs.BlessingAmount
		}

		return nil
	})
	if err != nil {
		return BlessingOutcome{}, err
	}

	return out, nil
}

// Clash settles a stance clash. When the caller does not fix the
// opponent's stance, it is rolled uniformly; the opposing deity is
// always rolled, for display only.
func (s *Service) Clash(ctx context.Context, id string, stance engine.Stance, opponent *engine.Stance, wager int64) (ClashResult, error) {
	var res ClashResult

	err := s.apply(ctx, id, func(st *engine.State) error {
		opp := engine.Stances[s.pick(len(engine.Stances))]
		if opponent != nil {
			opp = *opponent
		}

		pantheon := s.defs.Pantheon()
		oppGod := pantheon[s.pick(len(pantheon))]

		outcome, err := st.SettleClash(stance, opp, wager)
		if err != nil {
			return err
		}

		res = ClashResult{
			Outcome:        outcome,
			PlayerStance:   stance,
			OpponentStance: opp,
			OpponentGod:    oppGod,
			OpponentName:   s.defs.GodName(oppGod),
			Wager:          wager,
			Balance:        st.Balance,
		}

		return nil
	})
	if err != nil {
		return ClashResult{}, err
	}

	return res, nil
}

// Flush discards the persisted snapshot and resets the live state to
// defaults.
func (s *Service) Flush(ctx context.Context, id string) error {
	sess, err := s.getSession(ctx, id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	err = s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	sess.state = s.defs.NewState()

	slog.Info("player flushed", "player", id)

	return nil
}

// SaveAll checkpoints every live session. Called at session end
// (shutdown); errors are joined so one bad write doesn't hide another.
func (s *Service) SaveAll(ctx context.Context) error {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	sessions := make([]*session, 0, len(s.sessions))

	for id, sess := range s.sessions {
		ids = append(ids, id)
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	var errs []error

	for i, sess := range sessions {
		sess.mu.Lock()
		err := s.checkpoint(ctx, ids[i], sess.state)
		sess.mu.Unlock()

		if err != nil {
			errs = append(errs, fmt.Errorf("player %s: %w", ids[i], err))
		}
	}

	return errors.Join(errs...)
}
