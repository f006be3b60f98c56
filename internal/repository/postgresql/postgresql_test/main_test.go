package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/hris-mobile-api/internal/pkg/database"
	"github.com/cmlabs-hris/hris-mobile-api/migrations"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// TestMain connects to TEST_DATABASE_URL and applies the schema. Without it the
// integration tests in this package are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		db, err := database.NewPostgreSQLDB(dsn)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to connect to test database:", err)
			os.Exit(1)
		}
		if err := migrations.Apply(context.Background(), db); err != nil {
			fmt.Fprintln(os.Stderr, "failed to apply migrations:", err)
			os.Exit(1)
		}
		testDB = db
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *database.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	truncateAllTables(t)
	return testDB
}

func truncateAllTables(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(context.Background(), `
		TRUNCATE TABLE announcement_employees, announcements, events, employee_documents,
			document_types, expenses, payslip_lines, payslips, leave_requests, leave_allocations,
			leave_types, attendances, employees, refresh_tokens, users, companies CASCADE
	`)
	require.NoError(t, err)
}

type fixture struct {
	CompanyID  string
	UserID     string
	EmployeeID string
}

// seedEmployee creates a company, a user and the employee linked to it. The office
// sits in central Jakarta with a 100 m radius.
func seedEmployee(t *testing.T, ctx context.Context, email string) fixture {
	t.Helper()
	var f fixture

	err := testDB.QueryRow(ctx, `
		INSERT INTO companies (name, city) VALUES ('Test Company', 'Jakarta') RETURNING id
	`).Scan(&f.CompanyID)
	require.NoError(t, err)

	err = testDB.QueryRow(ctx, `
		INSERT INTO users (company_id, email, password_hash, role)
		VALUES ($1, $2, 'hash', 'employee') RETURNING id
	`, f.CompanyID, email).Scan(&f.UserID)
	require.NoError(t, err)

	err = testDB.QueryRow(ctx, `
		INSERT INTO employees (user_id, company_id, employee_code, full_name, office_latitude, office_longitude, allowed_radius_m)
		VALUES ($1, $2, $3, 'Test Employee', -6.2, 106.8166, 100) RETURNING id
	`, f.UserID, f.CompanyID, "EMP-"+email).Scan(&f.EmployeeID)
	require.NoError(t, err)

	return f
}
