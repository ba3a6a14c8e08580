package api

import (
	"net/http"

	"github.com/nellcorp/bankgate/config"

	"github.com/nellcorp/bankgate/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/nellcorp/bankgate"
)

type Api struct {
	engine *bankgate.Bankgate
	router *gin.Engine
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/login", a.Login)
	router.POST("/logout", a.Logout)
	router.POST("/validate-token", a.ValidateToken)

	router.POST("/customers", a.RegisterCustomer)
	router.GET("/customers/:id", a.GetCustomerProfile)
	router.PUT("/customers/:id", a.UpdateCustomerProfile)
	router.POST("/change-password", a.ChangePassword)
	router.GET("/customers/:id/accounts", a.GetCustomerAccounts)
	router.GET("/customers/:id/bill-payments", a.GetBillPaymentHistory)

	router.GET("/accounts/:number", a.GetAccountDetails)
	router.GET("/accounts/:number/balance", a.GetAccountBalance)
	router.GET("/accounts/:number/transactions", a.GetTransactionHistory)

	router.POST("/transfers", a.TransferMoney)
	router.GET("/transfers/:id", a.GetTransferStatus)

	router.GET("/biller-categories", a.GetBillerCategories)
	router.GET("/biller-categories/:id/billers", a.GetBillersByCategory)
	router.POST("/bill-payments", a.PayBill)

	router.GET("/server-time", a.GetServerTime)
	router.GET("/status", a.GetSystemStatus)
	return a.router
}

func NewAPI(b *bankgate.Bankgate) (*Api, error) {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	r := gin.Default()
	r.Use(middleware.RateLimitMiddleware(conf))
	if conf.Server.Secure {
		r.Use(middleware.SecretKeyAuthMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{engine: b, router: r}, nil
}

// authToken pulls the session token clients send with every
// authenticated request.
func authToken(c *gin.Context) string {
	return c.GetHeader("X-Auth-Token")
}

func (a Api) GetServerTime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"server_time": a.engine.GetServerTime()})
}

func (a Api) GetSystemStatus(c *gin.Context) {
	c.JSON(http.StatusOK, a.engine.GetSystemStatus())
}
