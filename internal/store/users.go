package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/user"
	"github.com/abhisek/coursegen/internal/content"
)

// GetOrCreateUser returns the user with the given username, creating it on
// first sight. Username matching is case-sensitive. A concurrent create that
// loses the unique-constraint race falls back to re-reading the winner's row.
func (s *Store) GetOrCreateUser(ctx context.Context, username, email string) (*content.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is empty", content.ErrInvalidInput)
	}

	u, err := s.client.User.Query().
		Where(user.Username(username)).
		Only(ctx)
	if err == nil {
		return userFromEnt(u), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user: %w", err)
	}

	create := s.client.User.Create().SetUsername(username)
	if email != "" {
		create.SetEmail(email)
	}
	u, err = create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			u, err = s.client.User.Query().
				Where(user.Username(username)).
				Only(ctx)
			if err != nil {
				return nil, fmt.Errorf("re-read user after constraint: %w", err)
			}
			return userFromEnt(u), nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return userFromEnt(u), nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id int) (*content.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %d: %w", id, content.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userFromEnt(u), nil
}

// DeleteUser removes a user and, through cascade rules, all of their
// courses, modules, subtopics, quizzes, and progress rows.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	err := s.client.User.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("user %d: %w", id, content.ErrNotFound)
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func userFromEnt(u *ent.User) *content.User {
	return &content.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
