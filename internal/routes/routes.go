package routes

import (
	"github.com/gin-gonic/gin"

	"dealpipeline/internal/authz"
	"dealpipeline/internal/handlers"
	"dealpipeline/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	dealHandler *handlers.DealHandler,
	activityHandler *handlers.ActivityHandler,
	memoHandler *handlers.MemoHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	// USERS
	users := r.Group("/users")
	{
		users.GET("/me", userHandler.Me)
		admin := users.Group("", middleware.Require(authz.OpManageUsers))
		{
			admin.GET("", userHandler.List)
			admin.POST("", userHandler.Create)
			admin.GET("/:id", userHandler.GetByID)
			admin.PUT("/:id", userHandler.Update)
		}
	}

	// DEALS
	deals := r.Group("/deals")
	{
		deals.GET("", middleware.Require(authz.OpListDeals), dealHandler.List)
		deals.GET("/:id", middleware.Require(authz.OpGetDeal), dealHandler.GetByID)
		deals.POST("", middleware.Require(authz.OpCreateDeal), dealHandler.Create)
		deals.PUT("/:id", middleware.Require(authz.OpUpdateDeal), dealHandler.Update)
		deals.DELETE("/:id", middleware.Require(authz.OpDeleteDeal), dealHandler.Delete)
	}

	// ACTIVITIES, VOTES, DECISIONS
	activities := r.Group("/activities")
	{
		activities.GET("/deal/:deal_id", middleware.Require(authz.OpListActivities), activityHandler.ListByDeal)
		activities.POST("/comment", middleware.Require(authz.OpAddComment), activityHandler.AddComment)
		activities.POST("/deal/:deal_id/vote", middleware.Require(authz.OpCastVote), activityHandler.CastVote)
		activities.GET("/deal/:deal_id/vote", middleware.Require(authz.OpGetVote), activityHandler.GetOwnVote)
		activities.GET("/deal/:deal_id/votes", middleware.Require(authz.OpListVotes), activityHandler.ListVotes)
		activities.POST("/deal/:deal_id/approve", middleware.Require(authz.OpApproveDeal), activityHandler.Approve)
		activities.POST("/deal/:deal_id/decline", middleware.Require(authz.OpDeclineDeal), activityHandler.Decline)
	}

	// MEMOS
	memos := r.Group("/memos")
	{
		memos.GET("/deal/:deal_id", middleware.Require(authz.OpGetMemo), memoHandler.GetByDeal)
		memos.GET("/versions/:version_id", middleware.Require(authz.OpListVersions), memoHandler.GetVersion)
		memos.GET("/:id", middleware.Require(authz.OpGetMemo), memoHandler.GetByID)
		memos.GET("/:id/versions", middleware.Require(authz.OpListVersions), memoHandler.ListVersions)
		memos.GET("/:id/export", middleware.Require(authz.OpExportMemo), memoHandler.ExportPDF)
		memos.POST("", middleware.Require(authz.OpCreateMemo), memoHandler.Create)
		memos.PUT("/:id", middleware.Require(authz.OpUpdateMemo), memoHandler.Update)
	}

	return r
}
