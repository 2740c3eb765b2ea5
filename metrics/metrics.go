package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voguevault_signups_total",
		Help: "Users created through signup.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voguevault_logins_total",
		Help: "Password verification attempts by result.",
	}, []string{"result"})

	OTPIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voguevault_otp_issued_total",
		Help: "OTP challenges issued via login and resend.",
	})

	OTPVerifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voguevault_otp_verified_total",
		Help: "OTP verification attempts by result.",
	}, []string{"result"})

	CartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voguevault_cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})

	FavoriteMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voguevault_favorite_mutations_total",
		Help: "Favorites mutations by operation.",
	}, []string{"op"})
)

// Handler exposes the default registry for scraping.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
