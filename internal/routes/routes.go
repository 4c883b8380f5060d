package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/accounts"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/inward"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/machines"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/materials"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/metrics"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/operators"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/programmer"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/qa"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/repository"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/internal/users"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/auditlog"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/roles"
	"github.com/Paazilparvesh/sakthi-ERP-sub000/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, repo *repository.Repository) {
	security.NewLoginHandler(repo).RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, repo *repository.Repository, auditLog *auditlog.Auditlog) {
	protectedRoutes := router.Group("")
	protectedRoutes.Use(security.JWTMiddleware())

	materialRepo := materials.NewRepository(repo)
	materials.NewHandler(materialRepo).RegisterRoutes(protectedRoutes)

	inward.NewHandler(inward.NewRepository(repo), materialRepo, auditLog).RegisterRoutes(protectedRoutes)
	programmer.NewHandler(programmer.NewRepository(repo), auditLog).RegisterRoutes(protectedRoutes)
	qa.NewHandler(qa.NewRepository(repo), auditLog).RegisterRoutes(protectedRoutes)
	accounts.NewHandler(accounts.NewRepository(repo), auditLog).RegisterRoutes(protectedRoutes)

	machines.NewHandler(machines.NewRepository(repo)).RegisterRoutes(protectedRoutes)
	operators.NewHandler(operators.NewRepository(repo)).RegisterRoutes(protectedRoutes)
	users.NewHandler(users.NewRepository(repo)).RegisterRoutes(protectedRoutes)

	protectedRoutes.GET("/audit-logs", security.Authorize(roles.Admin), func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		logs, err := auditLog.GetLogs(c.Query("resource_type"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not obtain audit logs", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
	})
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		log.Println("Health check successful")
	})

	router.GET("/metrics", metrics.Handler())
}
