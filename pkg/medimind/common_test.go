package medimind

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"medimind.xyz/medimind-service/pkg/db"
	"medimind.xyz/medimind-service/pkg/models"
)

func GetTestCoreWithMemorySqliteDialector(t *testing.T) *MediMind {
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	core := (&MediMind{Db: *dbInstance}).WithAllServices()
	return core
}

func registerTestUser(t *testing.T, core *MediMind, role models.Role) (*models.User, string) {
	t.Helper()

	password := "test-password-" + uuid.NewString()[:8]
	result, err := core.Account.Register(&RegisterInput{
		Name:     "Test " + string(role),
		Email:    uuid.NewString() + "@test.local",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, core.Db.Conn.First(&user, result.UserID).Error)
	return &user, password
}

func approveTestConnection(t *testing.T, core *MediMind, elder *models.User, requester *models.User) {
	t.Helper()

	require.NotNil(t, elder.RegistrationCode)
	_, err := core.Connection.Connect(requester.ID, *elder.RegistrationCode, "family")
	require.NoError(t, err)

	var connection models.Connection
	require.NoError(t, core.Db.Conn.
		First(&connection, "elder_id = ? AND requester_id = ?", elder.ID, requester.ID).Error)
	require.NoError(t, core.Connection.Approve(connection.ID))
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
