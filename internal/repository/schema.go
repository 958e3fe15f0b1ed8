package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// schemaStatements are applied in order; every statement is idempotent so the
// bootstrap can run repeatedly against an existing database.
var schemaStatements = []struct {
	label string
	sql   string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'student' CHECK (role IN ('student', 'member', 'admin')),
			status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved')),
			tac_code VARCHAR(10),
			tac_expiry TIMESTAMPTZ,
			reset_code VARCHAR(10),
			reset_expiry TIMESTAMPTZ,
			profile_picture VARCHAR(255) DEFAULT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"events", `
		CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			event_name VARCHAR(200) NOT NULL,
			description TEXT,
			event_date DATE NOT NULL,
			event_time VARCHAR(8),
			location VARCHAR(150),
			status VARCHAR(20) NOT NULL DEFAULT 'ongoing' CHECK (status IN ('ongoing', 'finished')),
			created_by UUID REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"event_roles", `
		CREATE TABLE IF NOT EXISTS event_roles (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			role_name VARCHAR(100) NOT NULL,
			slots INT NOT NULL DEFAULT 1
		)`},
	{"event_applications", `
		CREATE TABLE IF NOT EXISTS event_applications (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES event_roles(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"event_feedback", `
		CREATE TABLE IF NOT EXISTS event_feedback (
			id UUID PRIMARY KEY,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (event_id, user_id)
		)`},
	{"notifications", `
		CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type VARCHAR(50) NOT NULL DEFAULT 'event',
			title VARCHAR(200) NOT NULL,
			message TEXT,
			related_id UUID,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	// The reminder uniqueness guard: one notification per (user, source, type).
	{"notifications reminder index", `
		CREATE UNIQUE INDEX IF NOT EXISTS uq_notifications_user_related_type
		ON notifications (user_id, related_id, type)
		WHERE related_id IS NOT NULL`},
	{"notifications read index", `
		CREATE INDEX IF NOT EXISTS idx_notifications_user_read
		ON notifications (user_id, is_read)`},
	{"notifications created index", `
		CREATE INDEX IF NOT EXISTS idx_notifications_created_at
		ON notifications (created_at)`},
	{"chatbot_knowledge", `
		CREATE TABLE IF NOT EXISTS chatbot_knowledge (
			id UUID PRIMARY KEY,
			category VARCHAR(100) UNIQUE NOT NULL,
			keywords TEXT NOT NULL,
			response TEXT NOT NULL,
			suggestions TEXT NOT NULL DEFAULT '',
			priority INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"chatbot_knowledge active index", `
		CREATE INDEX IF NOT EXISTS idx_chatbot_knowledge_active
		ON chatbot_knowledge (is_active)`},
}

var starterKnowledge = []struct {
	category, keywords, response, suggestions string
	priority                                  int
}{
	{
		category:    "greeting",
		keywords:    "hi,hello,hey,greetings,good morning,good afternoon,good evening",
		response:    "Hello! I'm the GPS UTM assistant. Ask me about membership, events, or consumer rights.",
		suggestions: "How do I become a member?,What events are coming up?",
		priority:    10,
	},
	{
		category:    "membership",
		keywords:    "member,membership,join,register,sign up,apply",
		response:    "Register with your student email and wait for admin approval, usually within 1-2 business days.",
		suggestions: "How long does approval take?,What are member benefits?",
		priority:    5,
	},
	{
		category:    "events",
		keywords:    "event,events,activity,activities,workshop,program,upcoming",
		response:    "Approved members receive reminders about upcoming events. Check your notifications for details.",
		suggestions: "How do I apply for an event role?",
		priority:    5,
	},
}

// Bootstrap creates the full schema and seeds the default admin account and
// starter chatbot knowledge when missing. Safe to run more than once.
func Bootstrap(ctx context.Context, db *sqlx.DB, adminEmail, adminPassword string) ([]string, error) {
	results := make([]string, 0, len(schemaStatements)+2)

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt.sql); err != nil {
			return results, fmt.Errorf("bootstrap %s: %w", stmt.label, err)
		}
		results = append(results, fmt.Sprintf("%s created or exists", stmt.label))
	}

	seeded, err := seedAdmin(ctx, db, adminEmail, adminPassword)
	if err != nil {
		return results, fmt.Errorf("seed admin: %w", err)
	}
	if seeded {
		results = append(results, "default admin created")
	} else {
		results = append(results, "admin account already exists")
	}

	count, err := seedKnowledge(ctx, db)
	if err != nil {
		return results, fmt.Errorf("seed chatbot knowledge: %w", err)
	}
	if count > 0 {
		results = append(results, fmt.Sprintf("%d starter knowledge entries seeded", count))
	} else {
		results = append(results, "chatbot knowledge already populated")
	}

	return results, nil
}

func seedAdmin(ctx context.Context, db *sqlx.DB, email, password string) (bool, error) {
	var exists bool
	if err := db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email); err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, 'admin', 'approved')`,
		uuid.New(), "System Admin", email, string(hash))
	if err != nil {
		return false, err
	}
	log.Printf("Default admin created (email: %s)", email)
	return true, nil
}

func seedKnowledge(ctx context.Context, db *sqlx.DB) (int, error) {
	var count int64
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM chatbot_knowledge`); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, entry := range starterKnowledge {
		_, err := db.ExecContext(ctx, `
			INSERT INTO chatbot_knowledge (id, category, keywords, response, suggestions, priority, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, true)`,
			uuid.New(), entry.category, entry.keywords, entry.response, entry.suggestions, entry.priority)
		if err != nil {
			return 0, err
		}
	}
	return len(starterKnowledge), nil
}
