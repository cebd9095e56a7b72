package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mindcare/internal/app"
	"mindcare/internal/config"
	"mindcare/internal/model"
	"mindcare/internal/service"
	"mindcare/internal/transport/ws"
)

// sampleProfiles are PHQ-9 then GAD-7 answer sets, one per seeded student
var sampleProfiles = [][2][]int{
	{{0, 1, 0, 1, 0, 0, 1, 0, 0}, {1, 0, 0, 1, 0, 0, 0}},
	{{1, 2, 1, 1, 2, 1, 1, 0, 0}, {2, 1, 1, 2, 1, 1, 1}},
	{{2, 2, 2, 3, 2, 2, 1, 1, 0}, {2, 2, 3, 2, 2, 1, 2}},
	{{3, 3, 2, 3, 3, 2, 2, 2, 1}, {3, 3, 3, 2, 3, 2, 3}},
}

var seedAdmin = &model.UserClaims{UserID: "seed", Role: model.RoleAdmin}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		students   int
	)
	cmd := &cobra.Command{
		Use:          "mindcare-seed",
		Short:        "Create the demo accounts and sample assessments",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), configPath, students)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (defaults to .env in . or ./config)")
	cmd.Flags().IntVar(&students, "students", len(sampleProfiles), "extra sample students per demo college")
	return cmd
}

func seed(ctx context.Context, configPath string, students int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	app.SetupLogging(cfg.Log)

	a, err := app.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	hub := ws.NewHub()
	defer hub.Close()
	c := a.Container(hub)

	colleges := map[string]bool{}
	for _, demo := range cfg.Demo {
		user, err := ensureUser(ctx, a, c.UserService, &model.CreateUserRequest{
			Email:    demo.Email,
			Password: demo.Password,
			Name:     demo.Name,
			Role:     demo.Role,
			College:  demo.College,
		})
		if err != nil {
			return err
		}
		if user.Role == model.RoleStudent {
			colleges[user.College] = true
		}
	}

	submitted := 0
	for college := range colleges {
		slug := strings.ToLower(strings.ReplaceAll(college, " ", "-"))
		for i := 0; i < students; i++ {
			user, err := ensureUser(ctx, a, c.UserService, &model.CreateUserRequest{
				Email:    fmt.Sprintf("student%d@%s.demo.edu", i+1, slug),
				Password: "student123",
				Name:     fmt.Sprintf("Sample Student %d", i+1),
				Role:     model.RoleStudent,
				College:  college,
			})
			if err != nil {
				return err
			}

			profile := sampleProfiles[i%len(sampleProfiles)]
			actor := &model.UserClaims{UserID: user.ID, Role: user.Role, College: user.College}
			if _, err := c.AssessmentService.Submit(ctx, actor, &model.AssessmentResponse{
				PHQ9Answers: model.Answers(profile[0]...),
				GAD7Answers: model.Answers(profile[1]...),
			}); err != nil {
				return fmt.Errorf("submit assessment for %s: %w", user.Email, err)
			}
			submitted++
		}
	}

	log.WithFields(log.Fields{"accounts": len(cfg.Demo), "assessments": submitted}).Info("seed complete")
	return nil
}

// ensureUser creates the account unless its email is already taken
func ensureUser(ctx context.Context, a *app.App, users *service.UserService, req *model.CreateUserRequest) (*model.User, error) {
	user, err := users.Create(ctx, seedAdmin, req)
	if errors.Is(err, service.ErrConflict) {
		existing, err := a.Users.GetByEmail(ctx, strings.ToLower(req.Email))
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("user %s vanished during seed", req.Email)
		}
		log.WithField("email", existing.Email).Debug("user already present")
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", req.Email, err)
	}
	log.WithFields(log.Fields{"email": user.Email, "role": user.Role}).Info("user created")
	return user, nil
}
