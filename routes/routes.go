package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-admin-backend/controllers"
	"hotel-admin-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller onto the admin-console API surface.
func SetupRouter(
	gc *controllers.GuestController,
	rc *controllers.RoomController,
	rsc *controllers.ReservationController,
	sc *controllers.SeasonController,
	dc *controllers.DashboardController,
	cc *controllers.CalendarController,
	wc *controllers.WizardController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)
		api.POST("/usuarios/registro", controllers.Register)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth())
		{
			huespedes := secured.Group("/huespedes")
			{
				huespedes.GET("", gc.GetGuests)
				huespedes.GET("/:id", gc.GetGuestByID)
				huespedes.POST("", gc.CreateGuest)
			}

			habitaciones := secured.Group("/habitaciones")
			{
				habitaciones.GET("", rc.GetRooms)

				// la ruta fija debe ir antes de /:id
				habitaciones.PUT("/precio-por-tipo", rc.UpdatePriceByType)

				habitaciones.GET("/:id", rc.GetRoomByID)
				habitaciones.POST("", rc.CreateRoom)
				habitaciones.PUT("/:id", rc.UpdateRoom)
				habitaciones.DELETE("/:id", rc.DeleteRoom)
			}

			secured.GET("/tipos-habitacion", rc.GetRoomTypes)
			secured.GET("/servicios", rc.GetAmenities)

			reservas := secured.Group("/reservas")
			{
				reservas.GET("", rsc.GetReservations)
				reservas.POST("", rsc.CreateReservation)

				asistente := reservas.Group("/asistente")
				{
					asistente.POST("", wc.StartSession)
					asistente.GET("/:sesion", wc.GetSnapshot)
					asistente.POST("/:sesion/huesped", wc.SubmitGuest)
					asistente.POST("/:sesion/reserva", wc.SubmitBooking)
					asistente.POST("/:sesion/reiniciar", wc.RestartSession)
					asistente.DELETE("/:sesion", wc.CloseSession)
				}

				reservas.GET("/:id", rsc.GetReservationByID)
				reservas.PATCH("/:id/confirmar", rsc.ConfirmReservation)
				reservas.PATCH("/:id/cancelar", rsc.CancelReservation)
				reservas.GET("/:id/voucher", rsc.ReservationVoucher)
				reservas.DELETE("/:id", rsc.DeleteReservation)
			}

			temporadas := secured.Group("/temporadas")
			{
				temporadas.GET("", sc.GetSeasons)
				temporadas.POST("", sc.CreateSeason)
				temporadas.PUT("/:id", sc.UpdateSeason)
				temporadas.DELETE("/:id", sc.DeleteSeason)
			}

			secured.GET("/calendario", cc.GetMonth)

			dashboard := secured.Group("/dashboard")
			{
				dashboard.GET("/estadisticas", dc.GetStats)
				dashboard.GET("/habitaciones-por-estado", dc.GetRoomsByEstado)
				dashboard.GET("/habitaciones-recientes", dc.GetRecentRooms)
			}
		}
	}

	return r
}
