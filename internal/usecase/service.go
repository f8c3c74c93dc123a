package usecase

import (
	"github.com/PlayLink-CC/playlink-sub000/internal/data/remote"
	"github.com/PlayLink-CC/playlink-sub000/internal/wizard"
	"github.com/PlayLink-CC/playlink-sub000/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Calendar  CalendarService
	Slot      SlotService
	Booking   BookingService
	Wizard    WizardService
	Venue     VenueService
	Pricing   PricingService
	Review    ReviewService
	Wallet    WalletService
	Dashboard DashboardService
}

func NewService(rmt *remote.Remote, config *utils.Config, log *zap.Logger) *Service {
	drafts := wizard.NewStore(config.Wizard.DraftTTL)

	return &Service{
		Auth:      NewAuthService(rmt.Session, log),
		Calendar:  NewCalendarService(rmt, config.Calendar, log),
		Slot:      NewSlotService(rmt.Booking, log),
		Booking:   NewBookingService(rmt.Booking, log),
		Wizard:    NewWizardService(rmt.Venue, drafts, log),
		Venue:     NewVenueService(rmt.Venue, log),
		Pricing:   NewPricingService(rmt.Pricing, log),
		Review:    NewReviewService(rmt.Review, log),
		Wallet:    NewWalletService(rmt.Wallet, log),
		Dashboard: NewDashboardService(rmt.Analytics, rmt.Notification, log),
	}
}
