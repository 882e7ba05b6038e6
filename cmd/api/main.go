package main

import (
	"fmt"
	"net/http"

	"github.com/clockwise-hq/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockwise-hq/timeclock-backend-go/internal/handler/http"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockwise-hq/timeclock-backend-go/internal/pkg/oauth"
	"github.com/clockwise-hq/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clockwise-hq/timeclock-backend-go/internal/service/attendance"
	authService "github.com/clockwise-hq/timeclock-backend-go/internal/service/auth"
	leaveService "github.com/clockwise-hq/timeclock-backend-go/internal/service/leave"
	timesheetService "github.com/clockwise-hq/timeclock-backend-go/internal/service/timesheet"
	userService "github.com/clockwise-hq/timeclock-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.New()

	var googleSvc oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleSvc = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtRepo, jwtSvc)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, clk)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo, clk)
	timesheetSvc := timesheetService.NewTimesheetService(userRepo, attendanceRepo, leaveRepo, clk)
	userSvc := userService.NewUserService(db, userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		attendanceHandler,
		leaveHandler,
		timesheetHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
