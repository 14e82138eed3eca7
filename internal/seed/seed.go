// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/shivshankarkannoujiya/Medium/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// DefaultPassword is the signin password for every seeded user.
const DefaultPassword = "Password123!"

// Run populates the database with fake users and posts. Every seeded user
// shares DefaultPassword so seeded accounts are usable from a client.
func Run(db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		name := gofakeit.Name()
		users = append(users, models.User{
			Name:     name,
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hash),
		})
	}
	if len(users) > 0 {
		if err := db.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	if opts.NumPosts > 0 && len(users) == 0 {
		return fmt.Errorf("cannot seed posts without users")
	}

	posts := make([]models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		posts = append(posts, models.Post{
			Title:    gofakeit.Sentence(6),
			Content:  gofakeit.Paragraph(2, 4, 12, " "),
			AuthorID: author.ID,
		})
	}
	if len(posts) > 0 {
		if err := db.Create(&posts).Error; err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}

// clean removes all seeded data. Posts go first to respect the author
// relation.
func clean(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&models.Post{}).Error; err != nil {
		return fmt.Errorf("failed to clean posts: %w", err)
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to clean users: %w", err)
	}
	return nil
}
