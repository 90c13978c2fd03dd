package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"

	"ripple/config"
	"ripple/dto"
	"ripple/internal/middleware"
	"ripple/internal/pagination"
	"ripple/internal/repository"
	"ripple/internal/services"
	"ripple/internal/utils"
	"ripple/model"
)

func publicUser(u model.User) dto.UserPublic {
	return dto.UserPublic{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Description: u.Description,
		ProfilePic:  u.ProfilePic,
		BannerPic:   u.BannerPic,
	}
}

// attachFollowed marks which listed users the viewer follows, in one $in
// query. No-op on anonymous requests.
func attachFollowed(c *fiber.Ctx, db *mongo.Database, users []dto.UserPublic) error {
	viewer := viewerPtr(c)
	if viewer == nil {
		return nil
	}
	ids := make([]bson.ObjectID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	followed, err := repository.NewFollowRepository(db).FetchFollowedSet(c.Context(), *viewer, ids)
	if err != nil {
		return err
	}
	for i := range users {
		f := followed[users[i].ID]
		users[i].Followed = &f
	}
	return nil
}

// GetUsers godoc
// @Summary      Paginated user listing
// @Tags         users
// @Produce      json
// @Param        page   query int    false "1-based page" default(1)
// @Param        limit  query int    false "page size"    default(10)
// @Param        search query string false "search over name and username"
// @Success      200 {object} map[string]interface{}
// @Router       /api/users [get]
func GetUsers(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := bson.M{}
		if search := c.Query("search"); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"username": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		params := pagination.FromQuery(c, 1, 10)
		page, err := pagination.Find[model.User](c.Context(), db.Collection("users"), filter, nil, params)
		if err != nil {
			return internalError(c, err)
		}

		users := make([]dto.UserPublic, 0, len(page.Items))
		for _, u := range page.Items {
			users = append(users, publicUser(u))
		}
		if err := attachFollowed(c, db, users); err != nil {
			return internalError(c, err)
		}
		return c.JSON(pagination.Envelope("users", users, page.Next, page.Previous))
	}
}

// GetUser godoc
// @Summary      User profile
// @Description  Includes follower_count, following_count and, with a bearer token, whether the viewer follows this user.
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/users/{id} [get]
func GetUser(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}

		users := repository.NewUserRepository(db)
		follows := repository.NewFollowRepository(db)

		var (
			user           *model.User
			followed       bool
			followingCount int64
		)
		viewer := viewerPtr(c)
		g, gctx := errgroup.WithContext(c.Context())
		g.Go(func() error {
			var err error
			user, err = users.FindByID(gctx, id)
			return err
		})
		if viewer != nil {
			g.Go(func() error {
				var err error
				followed, err = follows.ExistsPair(gctx, *viewer, id)
				return err
			})
		}
		g.Go(func() error {
			var err error
			followingCount, err = follows.CountByAuthor(gctx, id)
			return err
		})
		if err := g.Wait(); err != nil {
			return internalError(c, err)
		}
		if user == nil {
			return notFound(c)
		}

		return c.JSON(fiber.Map{"user": dto.UserDetail{
			ID:             user.ID,
			Name:           user.Name,
			Username:       user.Username,
			Description:    user.Description,
			ProfilePic:     user.ProfilePic,
			BannerPic:      user.BannerPic,
			FollowerCount:  user.FollowerCount,
			FollowingCount: followingCount,
			DateCreated:    user.DateCreated,
			Followed:       followed,
		}})
	}
}

// GetUserPosts godoc
// @Summary      Paginated posts by a user, most-liked first
// @Tags         users
// @Produce      json
// @Param        id    path  string true  "User id"
// @Param        page  query int    false "1-based page" default(1)
// @Param        limit query int    false "page size"    default(10)
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/users/{id}/posts [get]
func GetUserPosts(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}

		params := pagination.FromQuery(c, 1, 10)
		page, err := pagination.Find[model.Post](c.Context(), db.Collection("posts"),
			bson.M{"author": id}, bson.D{{Key: "like_count", Value: -1}}, params)
		if err != nil {
			return internalError(c, err)
		}

		views, err := services.BuildPostViews(c.Context(), db, page.Items, viewerPtr(c))
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(pagination.Envelope("posts", views, page.Next, page.Previous))
	}
}

// GetUserComments godoc
// @Summary      Paginated comments by a user, with their parent posts populated
// @Tags         users
// @Produce      json
// @Param        id    path  string true  "User id"
// @Param        page  query int    false "1-based page" default(1)
// @Param        limit query int    false "page size"    default(10)
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/users/{id}/comments [get]
func GetUserComments(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}

		params := pagination.FromQuery(c, 1, 10)
		page, err := pagination.Find[model.Comment](c.Context(), db.Collection("comments"),
			bson.M{"author": id}, bson.D{{Key: "like_count", Value: -1}}, params)
		if err != nil {
			return internalError(c, err)
		}

		postIDs := make([]bson.ObjectID, 0, len(page.Items))
		for _, cm := range page.Items {
			postIDs = append(postIDs, cm.PostID)
		}
		posts, err := repository.NewPostRepository(db).FetchByIDs(c.Context(), postIDs)
		if err != nil {
			return internalError(c, err)
		}

		postAuthorIDs := make([]bson.ObjectID, 0, len(posts))
		for _, p := range posts {
			postAuthorIDs = append(postAuthorIDs, p.Author)
		}
		postAuthors, err := repository.NewUserRepository(db).FetchByIDs(c.Context(), postAuthorIDs)
		if err != nil {
			return internalError(c, err)
		}

		viewer := viewerPtr(c)
		var likeValues map[bson.ObjectID]bool
		if viewer != nil {
			targets := make([]bson.ObjectID, 0, len(page.Items))
			for _, cm := range page.Items {
				targets = append(targets, cm.ID)
			}
			likeValues, err = repository.NewLikeRepository(db).FetchValues(c.Context(), *viewer, targets)
			if err != nil {
				return internalError(c, err)
			}
		}

		views := make([]dto.CommentWithPost, 0, len(page.Items))
		for _, cm := range page.Items {
			post := posts[cm.PostID]
			author := postAuthors[post.Author]
			v := dto.CommentWithPost{
				Comment:       cm,
				DateFormatted: utils.FormatDate(cm.DateCreated),
				ParentPost: dto.CommentParentPost{
					Post:       post,
					Username:   author.Username,
					ProfilePic: author.ProfilePic,
				},
			}
			if viewer != nil {
				status := 0
				if value, present := likeValues[cm.ID]; present {
					status = -1
					if value {
						status = 1
					}
				}
				v.Liked = &status
			}
			views = append(views, v)
		}
		return c.JSON(pagination.Envelope("comments", views, page.Next, page.Previous))
	}
}

// listFollowEdges backs both the followers and the following listings: it
// paginates the follows collection on matchField and resolves the users on
// the resolveField side of each edge.
func listFollowEdges(db *mongo.Database, matchField, resolveField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}

		params := pagination.FromQuery(c, 1, 10)
		page, err := pagination.Find[model.Follow](c.Context(), db.Collection("follows"),
			bson.M{matchField: id}, nil, params)
		if err != nil {
			return internalError(c, err)
		}

		ids := make([]bson.ObjectID, 0, len(page.Items))
		for _, f := range page.Items {
			if resolveField == "author_id" {
				ids = append(ids, f.AuthorID)
			} else {
				ids = append(ids, f.TargetID)
			}
		}
		resolved, err := repository.NewUserRepository(db).FetchByIDs(c.Context(), ids)
		if err != nil {
			return internalError(c, err)
		}

		users := make([]dto.UserPublic, 0, len(ids))
		for _, uid := range ids {
			if u, ok := resolved[uid]; ok {
				users = append(users, publicUser(u))
			}
		}
		if err := attachFollowed(c, db, users); err != nil {
			return internalError(c, err)
		}
		return c.JSON(pagination.Envelope("users", users, page.Next, page.Previous))
	}
}

// GetFollowers godoc
// @Summary      Users following this user
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} map[string]interface{}
// @Router       /api/users/{id}/followers [get]
func GetFollowers(db *mongo.Database) fiber.Handler {
	return listFollowEdges(db, "target_id", "author_id")
}

// GetFollowing godoc
// @Summary      Users this user follows
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} map[string]interface{}
// @Router       /api/users/{id}/following [get]
func GetFollowing(db *mongo.Database) fiber.Handler {
	return listFollowEdges(db, "author_id", "target_id")
}

// FollowUser godoc
// @Summary      Toggle following a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Target user id"
// @Success      200 {object} dto.FollowResp
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/users/{id} [post]
func FollowUser(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.Viewer(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("missing viewer"))
		}
		targetID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}
		status, payload := services.ToggleFollow(c.Context(), db, viewer, targetID)
		return c.Status(status).JSON(payload)
	}
}

// UpdateUser godoc
// @Summary      Edit the viewer's profile
// @Description  Multipart form with name, username, description and optional profile_pic/banner_pic images (jpeg/png, max 2MB). Fields that fail validation are skipped and reported; the rest are applied.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User id (must be the viewer)"
// @Success      200 {object} dto.UpdateUserResp
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/users/{id}/edit [post]
func UpdateUser(db *mongo.Database, cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.Viewer(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("missing viewer"))
		}
		if c.Params("id") != viewer.Hex() {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.FieldErrors(dto.FieldError{Msg: "incorrect user id", Param: "_id"}))
		}

		form, formErr := c.MultipartForm()
		formValue := func(field string) (string, bool) {
			if formErr == nil && form != nil {
				if vs, ok := form.Value[field]; ok && len(vs) > 0 {
					return vs[0], true
				}
			}
			v := c.FormValue(field)
			return v, v != ""
		}

		fieldErrors := []dto.FieldError{}
		hasError := map[string]bool{}
		submitted := map[string]string{}

		validators := map[string]func(string) *dto.FieldError{
			"name":        services.ValidateName,
			"username":    services.ValidateUsername,
			"description": services.ValidateDescription,
		}
		for field, validate := range validators {
			value, present := formValue(field)
			if !present {
				continue
			}
			submitted[field] = value
			if ferr := validate(value); ferr != nil {
				fieldErrors = append(fieldErrors, *ferr)
				hasError[field] = true
			}
		}

		dupFields := map[string]string{}
		for _, field := range []string{"name", "username"} {
			if value, ok := submitted[field]; ok && !hasError[field] {
				dupFields[field] = value
			}
		}
		dupErrs, err := services.CheckDuplicatedFields(c.Context(), db, dupFields, &viewer)
		if err != nil {
			return internalError(c, err)
		}
		for _, ferr := range dupErrs {
			fieldErrors = append(fieldErrors, ferr)
			hasError[ferr.Param] = true
		}

		updated := map[string]string{}
		for field, value := range submitted {
			if !hasError[field] {
				updated[field] = value
			}
		}

		for _, imgField := range []string{"profile_pic", "banner_pic"} {
			path, err := services.SaveUserImage(c, cfg.UploadDir, imgField, viewer)
			if err != nil {
				if errors.Is(err, services.ErrBadImage) {
					fieldErrors = append(fieldErrors, dto.FieldError{Msg: err.Error(), Param: imgField})
					continue
				}
				return internalError(c, err)
			}
			if path != "" {
				updated[imgField] = path
			}
		}

		set := bson.M{}
		for field, value := range updated {
			set[field] = value
		}
		if err := repository.NewUserRepository(db).UpdateFields(c.Context(), viewer, set); err != nil {
			return internalError(c, err)
		}

		return c.JSON(dto.UpdateUserResp{UpdatedUserFields: updated, Errors: fieldErrors})
	}
}
