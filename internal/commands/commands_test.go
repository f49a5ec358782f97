package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfgPath := filepath.Join(dir, "fintrack.yaml")

	out, err := execute(t, "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized fintrack")

	_, err = os.Stat(cfgPath)
	require.NoError(t, err)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	st, err := store.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer st.Close()

	id, err := st.Categories.UncategorizedID(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Running init again refuses to clobber the config.
	_, err = execute(t, "init", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fintrack.yaml")
	dbPath := filepath.Join(dir, "fintrack.db")

	cfg := config.Default()
	cfg.Database.Path = dbPath
	require.NoError(t, config.Save(cfgPath, cfg))

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Categories.SeedDefaults(context.Background(), defaultCategories(cfg)))
	account, err := st.Accounts.Create(context.Background(), model.Account{
		UserID: "local",
		Name:   "Checking",
		Type:   model.AccountTypeChecking,
	})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	csvPath := filepath.Join(dir, "export.csv")
	csv := "Date,Description,Amount\n" +
		"2025-01-03,STARBUCKS STORE 10281,-5.75\n" +
		"2025-01-10,TRADER JOE'S #552,-84.27\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	out, err := execute(t, "import", "--config", cfgPath, "--account", account.ID, csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2, skipped 0, errors 0")

	// Importing the same file again skips both rows.
	out, err = execute(t, "import", "--config", cfgPath, "--account", account.ID, csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0, skipped 2, errors 0")
}

func TestImportUnknownAccount(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fintrack.yaml")
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(dir, "fintrack.db")
	require.NoError(t, config.Save(cfgPath, cfg))

	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date,Description,Amount\n"), 0o644))

	_, err := execute(t, "import", "--config", cfgPath, "--account", "nope", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Account not found")
}
