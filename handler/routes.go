package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/pets", h.listPetsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/pets", h.requireActivatedUser(h.createPetHandler))
	router.HandlerFunc(http.MethodGet, "/v1/pets/:petId", h.showPetHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/pets/:petId", h.requirePetOwnerPermission(h.updatePetHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/pets/:petId", h.requirePetOwnerPermission(h.deletePetHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/pets/:petId/photo", h.requirePetOwnerPermission(h.uploadPetPhotoHandler))

	router.HandlerFunc(http.MethodPost, "/v1/pets/:petId/applications", h.requireActivatedUser(h.createApplicationHandler))
	router.HandlerFunc(http.MethodGet, "/v1/pets/:petId/applications", h.requirePetOwnerPermission(h.listApplicationsForPetHandler))
	router.HandlerFunc(http.MethodGet, "/v1/applications/:applicationId", h.requireActivatedUser(h.showApplicationHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/applications/:applicationId", h.requireActivatedUser(h.reviewApplicationHandler))

	router.HandlerFunc(http.MethodGet, "/v1/posts", h.listPostsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts", h.requireActivatedUser(h.createPostHandler))
	router.HandlerFunc(http.MethodGet, "/v1/posts/:postId", h.showPostHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/posts/:postId", h.requirePostOwnerPermission(h.updatePostHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:postId", h.requirePostOwnerPermission(h.deletePostHandler))
	router.HandlerFunc(http.MethodPost, "/v1/posts/:postId/vote", h.requireActivatedUser(h.votePostHandler))
	router.HandlerFunc(http.MethodPost, "/v1/posts/:postId/follow", h.requireActivatedUser(h.toggleFollowPostHandler))

	router.HandlerFunc(http.MethodGet, "/v1/posts/:postId/comments", h.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts/:postId/comments", h.requireActivatedUser(h.createCommentHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/comments/:commentId", h.requireCommentOwnerPermission(h.updateCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/comments/:commentId", h.requireCommentOwnerPermission(h.deleteCommentHandler))
	router.HandlerFunc(http.MethodPost, "/v1/comments/:commentId/like", h.requireActivatedUser(h.toggleCommentLikeHandler))

	router.HandlerFunc(http.MethodGet, "/v1/campaigns", h.listCampaignsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/campaigns", h.requireActivatedUser(h.createCampaignHandler))
	router.HandlerFunc(http.MethodGet, "/v1/campaigns/:campaignId", h.showCampaignHandler)
	router.HandlerFunc(http.MethodPost, "/v1/campaigns/:campaignId/donations", h.requireActivatedUser(h.createDonationHandler))
	router.HandlerFunc(http.MethodPost, "/v1/donations/:donationId/confirm", h.requireActivatedUser(h.confirmDonationHandler))

	router.HandlerFunc(http.MethodPost, "/v1/users", h.registerUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/activated", h.activateUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/password", h.resetUserPasswordHandler)

	router.HandlerFunc(http.MethodGet, "/v1/users/profile", h.requireActivatedUser(h.showUserHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/users/profile", h.requireActivatedUser(h.updateUserHandler))
	router.HandlerFunc(http.MethodPut, "/v1/users/profile", h.requireActivatedUser(h.updateUserPasswordHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/users/profile", h.requireActivatedUser(h.deleteUserHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/applications", h.requireActivatedUser(h.listUserApplicationsHandler))

	router.HandlerFunc(http.MethodPost, "/v1/tokens/activation", h.createActivationTokenHandler)
	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))
	router.HandlerFunc(http.MethodPost, "/v1/tokens/password-reset", h.createPasswordResetTokenHandler)

	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)

	return h.metrics(h.recoverPanic(h.enableCORS(h.rateLimit(h.authenticate(router)))))
}
