// Command seed provisions user accounts from a YAML file. Accounts are
// created out-of-band; the API itself has no registration endpoint.
package main

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Poirot101/oct-recruitment-system/internal/config"
	"github.com/Poirot101/oct-recruitment-system/internal/database"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
	"github.com/Poirot101/oct-recruitment-system/internal/repository/postgres"
)

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	UserID       string `yaml:"userid"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	Role         string `yaml:"role"`
}

func main() {
	path := flag.String("file", "users.yaml", "path to the YAML file with user accounts")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal(err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		log.Fatal(err)
	}
	if len(file.Users) == 0 {
		log.Fatalf("no users found in %s", *path)
	}

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(db); err != nil {
			log.Fatal(err)
		}
	}

	repo := postgres.NewUserRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created := 0
	for _, entry := range file.Users {
		account, err := toUser(entry)
		if err != nil {
			log.Fatalf("user %q: %v", entry.UserID, err)
		}
		if _, err := repo.Create(ctx, account); err != nil {
			log.Fatalf("user %q: %v", entry.UserID, err)
		}
		created++
	}
	fmt.Printf("created %d users\n", created)
}

func toUser(entry seedUser) (user.User, error) {
	userID := strings.TrimSpace(entry.UserID)
	if userID == "" {
		return user.User{}, fmt.Errorf("userid is required")
	}
	role, ok := user.ParseRole(strings.TrimSpace(entry.Role))
	if !ok {
		return user.User{}, fmt.Errorf("unknown role %q", entry.Role)
	}
	hash := strings.TrimSpace(entry.PasswordHash)
	if hash == "" {
		if entry.Password == "" {
			return user.User{}, fmt.Errorf("either password or password_hash is required")
		}
		sum := md5.Sum([]byte(entry.Password))
		hash = hex.EncodeToString(sum[:])
	}
	return user.User{UserID: userID, PasswordHash: hash, Role: role}, nil
}
