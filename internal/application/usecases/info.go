package usecases

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"telegram-joke-bot/internal/domain/host"
)

// DefaultHomepages are shown when no homepages are configured
var DefaultHomepages = []string{
	"http://t.me/TelegramJokeBot",
	"https://github.com/telegram-joke-bot/telegram-joke-bot",
}

// InfoUseCase renders the informational text shown on the homepage and for /info
type InfoUseCase struct {
	host      host.Host
	homepages []string
}

// NewInfoUseCase creates a new info use case
func NewInfoUseCase(h host.Host, homepages []string) *InfoUseCase {
	if len(homepages) == 0 {
		homepages = DefaultHomepages
	}
	return &InfoUseCase{host: h, homepages: homepages}
}

// Info returns the informational text
func (uc *InfoUseCase) Info() string {
	var b strings.Builder
	b.WriteString("This is a Telegram bot!\n")
	fmt.Fprintf(&b, "My process id: %s\n", uc.host.ID())
	fmt.Fprintf(&b, "Local time is %dns.\n", uc.host.Now())
	fmt.Fprintf(&b, "My credit balance is %d\n", uc.host.Balance())
	b.WriteString("Visit my homepages:")
	for _, page := range uc.homepages {
		b.WriteString("\n")
		b.WriteString(page)
	}
	return b.String()
}

// CreditUseCase handles the donation hook
type CreditUseCase struct {
	host   host.Host
	logger *zap.Logger
}

// NewCreditUseCase creates a new credit use case
func NewCreditUseCase(h host.Host, logger *zap.Logger) *CreditUseCase {
	return &CreditUseCase{host: h, logger: logger}
}

// Accept takes all available credits unconditionally
func (uc *CreditUseCase) Accept(available uint64) uint64 {
	if available == 0 {
		return 0
	}

	accepted := uc.host.AcceptCredits(available)
	uc.logger.Info("Accepted credits",
		zap.Uint64("accepted", accepted),
		zap.Uint64("balance", uc.host.Balance()))

	return accepted
}
