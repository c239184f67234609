package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/usergraph/social-service/internal/pkg/cmd"
	commonhttp "github.com/usergraph/social-service/internal/pkg/http"
	socialhttp "github.com/usergraph/social-service/internal/social/infra/http"
	pkgcmd "github.com/usergraph/social-service/pkg/cmd"
	pkghttp "github.com/usergraph/social-service/pkg/http"
	"github.com/usergraph/social-service/pkg/log"
)

// Fills a running service with demo data over its HTTP API:
// a few users with profiles and posts, subscribed to each other.
func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	seeder := seeder{
		client: infra.HTTPClientFactory.MustLoad().MustInitClient(commonhttp.DestinationSocialService),
		logger: infra.Logger.MustLoad(),
	}

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(), seeder.seed)
}

type seeder struct {
	client pkghttp.Client
	logger log.Logger
}

func (s seeder) seed(ctx context.Context) error {
	users := []socialhttp.CreateUserIn{
		{FirstName: "Alice", LastName: "Johnson", Email: "alice@example.com"},
		{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
		{FirstName: "Carol", LastName: "Williams", Email: "carol@example.com"},
	}

	userIDs := make([]uuid.UUID, 0, len(users))
	for _, in := range users {
		user, err := s.createUser(ctx, in)
		if err != nil {
			return err
		}

		userIDs = append(userIDs, user.ID)
		s.logger.WithField("userID", user.ID).Info(ctx, "user created")
	}

	memberTypes := []string{"basic", "business", "basic"}
	for i, userID := range userIDs {
		err := s.createProfile(ctx, userID, memberTypes[i])
		if err != nil {
			return err
		}

		err = s.createPost(ctx, userID, fmt.Sprintf("Hello from %s", users[i].FirstName))
		if err != nil {
			return err
		}
	}

	// everyone subscribes to the next user, the last one to the first
	for i, userID := range userIDs {
		err := s.subscribe(ctx, userID, userIDs[(i+1)%len(userIDs)])
		if err != nil {
			return err
		}
	}

	s.logger.Info(ctx, "demo data seeded")
	return nil
}

func (s seeder) createUser(ctx context.Context, in socialhttp.CreateUserIn) (*socialhttp.UserOut, error) {
	var out socialhttp.UserOut
	resp, err := s.client.NewRequest(ctx).
		SetBody(in).
		SetResult(&out).
		Post("/users")
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create user: %s", resp.Status())
	}

	return &out, nil
}

func (s seeder) createProfile(ctx context.Context, userID uuid.UUID, memberTypeID string) error {
	resp, err := s.client.NewRequest(ctx).
		SetBody(socialhttp.CreateProfileIn{
			Avatar:       fmt.Sprintf("https://example.com/avatars/%s.png", userID),
			Sex:          "unspecified",
			Birthday:     631152000,
			Country:      "Netherlands",
			Street:       "Keizersgracht 1",
			City:         "Amsterdam",
			MemberTypeID: memberTypeID,
			UserID:       userID,
		}).
		Post("/profiles")
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("create profile: %s", resp.Status())
	}

	return nil
}

func (s seeder) createPost(ctx context.Context, userID uuid.UUID, title string) error {
	resp, err := s.client.NewRequest(ctx).
		SetBody(socialhttp.CreatePostIn{
			Title:   title,
			Content: "This post was generated by the seed tool.",
			UserID:  userID,
		}).
		Post("/posts")
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("create post: %s", resp.Status())
	}

	return nil
}

func (s seeder) subscribe(ctx context.Context, userID, targetUserID uuid.UUID) error {
	resp, err := s.client.NewRequest(ctx).
		SetBody(socialhttp.SubscriptionIn{TargetUserID: targetUserID}).
		Post(fmt.Sprintf("/users/%s/subscribe-to", userID))
	if err != nil {
		return fmt.Errorf("subscribe user: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("subscribe user: %s", resp.Status())
	}

	return nil
}
