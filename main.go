package main

import (
	"log"
	"net/http"
	"strings"
	"time"
	"yatube/config"
	"yatube/db"
	"yatube/events"
	"yatube/handlers"
	"yatube/models"
	"yatube/templates"
	"yatube/utils"
	"yatube/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName     = "sessionid"
	sessionExpirationTime = 14 * 86400 // 2 weeks
)

func main() {
	db.Init()
	defer db.Close()
	models.Init()
	models.EnsureAdmin(config.ADMIN_USERNAME, config.ADMIN_PASSWORD)
	if err := events.Init(config.NATS_URL); err != nil {
		log.Printf("NATS unavailable, post events disabled: %v", err)
	}
	defer events.Close()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.CorsOrigins(),
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.SetHTMLTemplate(templates.MustLoad(config.TEMPLATES_DIR))

	sessionKey := config.SESSION_KEY
	if sessionKey == "" {
		log.Printf("SESSION_KEY is not set, sessions will not survive a restart")
		sessionKey = uuid.NewString() + uuid.NewString()
	}
	sessionStore := gormsessions.NewStore(db.Instance, true, []byte(sessionKey))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionExpirationTime,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   config.TLS_DOMAINS != "",
	})
	router.Use(sessions.Sessions(sessionCookieName, sessionStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use(utils.CacheControl(utils.CacheNoCache)) // pages depend on the logged in user

	/*
	 *	Web interface
	 */
	web.Register(router)

	/*
	 *	JSON API
	 */
	handlers.Register(router.Group("/api/v1"))

	log.Printf("Listening on %s, %d posts per page", config.BIND_ADDRESS, config.PAGINATOR)
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
