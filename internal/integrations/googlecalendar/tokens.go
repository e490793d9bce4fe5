package googlecalendar

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// FileTokenSource строит источник токенов из JSON сервисного аккаунта.
// Токены обновляются самим источником по мере истечения - никакого
// глобального состояния процесса и ручного рефреша.
func FileTokenSource(ctx context.Context, credentialsFile string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read credentials file: %v", ErrConfiguration, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse credentials: %v", ErrConfiguration, err)
	}

	return creds.TokenSource, nil
}
