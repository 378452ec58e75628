package cli

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	userrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Provision user accounts",
	}
	cmd.AddCommand(newUsersCreateCmd(), newUsersSetActiveCmd("activate", true), newUsersSetActiveCmd("deactivate", false))
	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var email, name, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an active user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := newUser(email, name, role, time.Now())
			if err != nil {
				return err
			}

			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			created, err := userrepo.New(e.pool).Create(cmd.Context(), u)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s user %s (%s)\n", created.Role, created.Email, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleLawyer), "ADMIN, LAWYER, ASSISTANT or CLIENT")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newUsersSetActiveCmd(use string, active bool) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   use,
		Short: strings.ToUpper(use[:1]) + use[1:] + " a user by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			users := userrepo.New(e.pool)
			u, err := users.GetByEmail(cmd.Context(), normalizeEmail(email))
			if err != nil {
				return fmt.Errorf("find user: %w", err)
			}
			if err := users.SetActive(cmd.Context(), u.ID, active); err != nil {
				return fmt.Errorf("update user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s\n", u.Email, map[bool]string{true: "active", false: "inactive"}[active])
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email (required)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// newUser validates the flags of users create and builds the record.
func newUser(email, name, role string, now time.Time) (domain.User, error) {
	var errs domain.FieldErrors

	email = normalizeEmail(email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs.Add("email", "must be a valid email address")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "required")
	}
	r := domain.UserRole(strings.ToUpper(strings.TrimSpace(role)))
	if !r.IsValid() {
		errs.Add("role", "must be one of ADMIN, LAWYER, ASSISTANT, CLIENT")
	}
	if err := errs.Err(); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      r,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
