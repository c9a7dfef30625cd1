package main

import (
	"context"
	"os"
	"time"

	"github.com/campusmatch/campusmatch-backend/internal/config"
	"github.com/campusmatch/campusmatch-backend/internal/domain"
	"github.com/campusmatch/campusmatch-backend/internal/infrastructure/database"
	"github.com/campusmatch/campusmatch-backend/internal/logger"
	"github.com/campusmatch/campusmatch-backend/internal/repository/postgres"
	"golang.org/x/crypto/bcrypt"
)

// seed populates the database with a small demo campus: a handful of
// accounts across genders and preferences, some one-sided swipes and one
// mutual pair so the matches screen has content on first login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", logger.FormatText)
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.InitFromConfig(cfg)

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logger.Error("failed to ensure schema", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := postgres.NewUserRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash demo password", "err", err)
		os.Exit(1)
	}

	str := func(s string) *string { return &s }

	users := []*domain.User{
		{
			Email: "alice@campus.edu", Name: "Alice", Age: 21,
			Gender: domain.GenderFemale, InterestedIn: domain.InterestMale,
			Bio:   str("CS senior, coffee-fueled. Ask me about my sourdough starter."),
			Image: str("/uploads/demo_alice.jpg"), Instagram: str("alice.codes"),
		},
		{
			Email: "ben@campus.edu", Name: "Ben", Age: 22,
			Gender: domain.GenderMale, InterestedIn: domain.InterestFemale,
			Bio:   str("Econ major, intramural soccer, terrible at mini golf."),
			Image: str("/uploads/demo_ben.jpg"), Instagram: str("ben_kicks"),
		},
		{
			Email: "carol@campus.edu", Name: "Carol", Age: 20,
			Gender: domain.GenderFemale, InterestedIn: domain.InterestBoth,
			Bio:   str("Art history, plant parent of 14, always down for museum trips."),
			Image: str("/uploads/demo_carol.jpg"), Instagram: str("carol.paints"),
		},
		{
			Email: "dan@campus.edu", Name: "Dan", Age: 23,
			Gender: domain.GenderMale, InterestedIn: domain.InterestFriends,
			Bio:   str("Grad student, board game nights every Thursday, new in town."),
			Image: str("/uploads/demo_dan.jpg"), Instagram: str("dan.plays"),
		},
		{
			Email: "emi@campus.edu", Name: "Emi", Age: 19,
			Gender: domain.GenderFemale, InterestedIn: domain.InterestFriends,
			Bio:   str("Exchange student looking for hiking buddies and study groups."),
			Image: str("/uploads/demo_emi.jpg"), Instagram: str("emi.hikes"),
		},
	}

	byEmail := make(map[string]*domain.User, len(users))
	for _, u := range users {
		u.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, u); err != nil {
			if err == domain.ErrEmailTaken {
				existing, gerr := userRepo.GetByEmail(ctx, u.Email)
				if gerr != nil {
					logger.Error("failed to load existing user", "email", u.Email, "err", gerr)
					os.Exit(1)
				}
				byEmail[u.Email] = existing
				continue
			}
			logger.Error("failed to create user", "email", u.Email, "err", err)
			os.Exit(1)
		}
		byEmail[u.Email] = u
		logger.Info("created user", "email", u.Email, "id", u.ID)
	}

	alice := byEmail["alice@campus.edu"]
	ben := byEmail["ben@campus.edu"]
	carol := byEmail["carol@campus.edu"]
	dan := byEmail["dan@campus.edu"]
	emi := byEmail["emi@campus.edu"]

	swipes := []*domain.Swipe{
		// mutual pair: Alice and Ben match on login
		{FromID: alice.ID, ToID: ben.ID, Direction: domain.DirectionRight},
		{FromID: ben.ID, ToID: alice.ID, Direction: domain.DirectionRight},
		// one-sided like so Carol shows a nonzero likes count
		{FromID: ben.ID, ToID: carol.ID, Direction: domain.DirectionRight},
		// outstanding friend request from Dan at Emi
		{FromID: dan.ID, ToID: emi.ID, Direction: domain.DirectionFriend},
	}
	for _, s := range swipes {
		if err := swipeRepo.Upsert(ctx, s); err != nil {
			logger.Error("failed to seed swipe", "from", s.FromID, "to", s.ToID, "err", err)
			os.Exit(1)
		}
	}

	match := &domain.Match{User1ID: alice.ID, User2ID: ben.ID, Type: domain.MatchTypeDate}
	if err := matchRepo.Create(ctx, match); err != nil && err != domain.ErrMatchAlreadyExists {
		logger.Error("failed to seed match", "err", err)
		os.Exit(1)
	}

	logger.Info("seed complete", "users", len(users), "swipes", len(swipes))
}
