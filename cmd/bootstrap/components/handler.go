package components

import (
	"facility-booking/internal/handler"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewResourceHandler,
		api.NewAvailabilityHandler,
		api.NewSlotHandler,
		api.NewUsageHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	booking *api.BookingHandler,
	resource *api.ResourceHandler,
	availability *api.AvailabilityHandler,
	slot *api.SlotHandler,
	usage *api.UsageHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:      booking,
		Resource:     resource,
		Availability: availability,
		Slot:         slot,
		Usage:        usage,
	}
}
