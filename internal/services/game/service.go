package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KirkDiggler/pig/internal/common/uuid"
	"github.com/KirkDiggler/pig/internal/dice"
	"github.com/KirkDiggler/pig/internal/models"
	gameRepo "github.com/KirkDiggler/pig/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/pig/internal/repositories/player"
)

// service implements the Service interface
type service struct {
	winPoints     int
	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	diceRoller    dice.Roller
	console       Console
	clock         quartz.Clock
	uuidGenerator uuid.UUID
	logger        *log.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Console == nil {
		return nil, ErrNilConsole
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	winPoints := cfg.WinPoints
	if winPoints == 0 {
		winPoints = DefaultWinPoints
	}
	if winPoints < 0 {
		return nil, ErrInvalidWinPoints
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &service{
		winPoints:     winPoints,
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		diceRoller:    cfg.DiceRoller,
		console:       cfg.Console,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// StartGame seats the players in the given order and picks who goes first
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.PlayerNames) == 0 {
		return nil, ErrNoPlayers
	}

	players := make([]*models.Player, 0, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptyPlayerName
		}
		players = append(players, models.NewPlayer(name))
	}

	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		Players:   players,
		WinPoints: s.winPoints,
		Status:    models.GameStatusInProgress,
		StartedAt: s.clock.Now(),
	}
	game.CurrentIndex = selectStartingPlayer(s.diceRoller, players)

	s.logger.Debug("game started",
		"game_id", game.ID,
		"players", len(players),
		"win_points", game.WinPoints,
		"first", game.CurrentPlayer().Name)

	return &StartGameOutput{
		Game:           game,
		StartingPlayer: game.CurrentPlayer(),
	}, nil
}

// RollDice rolls the die for the current player and applies the result
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	var game *models.Game
	if input != nil {
		game = input.Game
	}
	if err := checkPlayable(game); err != nil {
		return nil, err
	}

	roller := game.CurrentPlayer()
	value := s.diceRoller.Roll(dice.DefaultSides)
	game.RollCount++

	current := applyRoll(game, value)

	roll := &models.Roll{
		Value:       value,
		PlayerName:  roller.Name,
		RoundPoints: roller.RoundPoints,
		Forfeited:   value == 1,
		Timestamp:   s.clock.Now(),
	}

	s.logger.Debug("rolled",
		"game_id", game.ID,
		"player", roller.Name,
		"value", value,
		"round_points", roller.RoundPoints)

	return &RollDiceOutput{
		Roll:          roll,
		CurrentPlayer: current,
		TurnAdvanced:  roll.Forfeited,
	}, nil
}

// BankRound commits the current player's round and checks for a win
func (s *service) BankRound(ctx context.Context, input *BankRoundInput) (*BankRoundOutput, error) {
	var game *models.Game
	if input != nil {
		game = input.Game
	}
	if err := checkPlayable(game); err != nil {
		return nil, err
	}

	banker := game.CurrentPlayer()
	banked, won := bankRound(game)

	s.logger.Debug("banked",
		"game_id", game.ID,
		"player", banker.Name,
		"banked", banked,
		"total_points", banker.TotalPoints,
		"won", won)

	return &BankRoundOutput{
		PlayerName:    banker.Name,
		Banked:        banked,
		TotalPoints:   banker.TotalPoints,
		Won:           won,
		CurrentPlayer: game.CurrentPlayer(),
	}, nil
}

// QuitGame aborts the game, dropping the current player's unbanked points
func (s *service) QuitGame(ctx context.Context, input *QuitGameInput) (*QuitGameOutput, error) {
	var game *models.Game
	if input != nil {
		game = input.Game
	}
	if err := checkPlayable(game); err != nil {
		return nil, err
	}

	current := game.CurrentPlayer()
	discarded := current.RoundPoints
	current.RoundPoints = 0
	game.Status = models.GameStatusAborted

	s.logger.Debug("game aborted",
		"game_id", game.ID,
		"player", current.Name,
		"discarded", discarded)

	return &QuitGameOutput{
		DiscardedPoints: discarded,
	}, nil
}

// HandleCommand parses a raw token and runs the matching operation. Invalid
// tokens and finished games leave the state untouched.
func (s *service) HandleCommand(ctx context.Context, input *HandleCommandInput) (*HandleCommandOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := checkPlayable(input.Game); err != nil {
		return nil, err
	}

	cmd, err := ParseCommand(input.Command)
	if err != nil {
		return nil, err
	}

	output := &HandleCommandOutput{
		Command: cmd,
	}

	switch cmd {
	case CommandRoll:
		output.Roll, err = s.RollDice(ctx, &RollDiceInput{Game: input.Game})
	case CommandNext:
		output.Bank, err = s.BankRound(ctx, &BankRoundInput{Game: input.Game})
	case CommandQuit:
		output.Quit, err = s.QuitGame(ctx, &QuitGameInput{Game: input.Game})
	}
	if err != nil {
		return nil, err
	}

	return output, nil
}

// EndGame stamps the end time of a finished game and writes it to the
// configured history repositories
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	game := input.Game
	if game == nil {
		return nil, ErrNilGame
	}

	if !game.Status.IsOver() {
		return nil, ErrInvalidGameState
	}

	if game.EndedAt.IsZero() {
		game.EndedAt = s.clock.Now()
	}

	record := newGameRecord(game)

	if s.gameRepo != nil {
		err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
			Record: record,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
	}

	if s.playerRepo != nil {
		for _, result := range playerResults(game) {
			err := s.playerRepo.RecordResult(ctx, result)
			if err != nil {
				return nil, fmt.Errorf("failed to record result for %s: %w", result.PlayerName, err)
			}
		}
	}

	s.logger.Debug("game recorded",
		"game_id", game.ID,
		"status", game.Status,
		"rolls", game.RollCount)

	return &EndGameOutput{
		Record: record,
	}, nil
}

func newGameRecord(game *models.Game) *models.GameRecord {
	standings := make([]models.Standing, 0, len(game.Players))
	for _, player := range game.Players {
		standings = append(standings, models.Standing{
			PlayerName:  player.Name,
			TotalPoints: player.TotalPoints,
		})
	}

	record := &models.GameRecord{
		ID:        game.ID,
		Status:    game.Status,
		WinPoints: game.WinPoints,
		Standings: standings,
		RollCount: game.RollCount,
		StartedAt: game.StartedAt,
		EndedAt:   game.EndedAt,
	}

	if game.IsWon() {
		winner := game.CurrentPlayer()
		record.WinnerName = winner.Name
		record.FinalScore = winner.TotalPoints
	}

	return record
}

// playerResults folds the roster into one result per distinct name, in seat
// order. Stats are keyed by name, so seats sharing a name count as a single
// game played: a win when any of them won, with the best banked total.
func playerResults(game *models.Game) []*playerRepo.RecordResultInput {
	results := make([]*playerRepo.RecordResultInput, 0, len(game.Players))
	byName := make(map[string]*playerRepo.RecordResultInput, len(game.Players))

	for _, player := range game.Players {
		won := game.IsWon() && player == game.CurrentPlayer()

		result, ok := byName[player.Name]
		if !ok {
			result = &playerRepo.RecordResultInput{
				PlayerName: player.Name,
			}
			byName[player.Name] = result
			results = append(results, result)
		}

		result.Won = result.Won || won
		result.Points = max(result.Points, player.TotalPoints)
	}

	return results
}

// checkPlayable rejects games that cannot take another command
func checkPlayable(game *models.Game) error {
	if game == nil {
		return ErrNilGame
	}
	if len(game.Players) == 0 {
		return ErrNoPlayers
	}
	if game.Status.IsOver() {
		return ErrGameOver
	}
	if !game.Status.IsInProgress() {
		return ErrInvalidGameState
	}
	return nil
}
