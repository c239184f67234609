package social

import (
	"context"

	datasql "github.com/usergraph/social-service/data/sql/social"
	"github.com/usergraph/social-service/internal/pkg/cmd"
	"github.com/usergraph/social-service/internal/social/app/service"
	"github.com/usergraph/social-service/internal/social/domain"
	"github.com/usergraph/social-service/internal/social/infra/http"
	"github.com/usergraph/social-service/internal/social/infra/mem"
	socialsql "github.com/usergraph/social-service/internal/social/infra/sql"
	"github.com/usergraph/social-service/pkg/event"
	pkghttp "github.com/usergraph/social-service/pkg/http"
	"github.com/usergraph/social-service/pkg/lazy"
	"github.com/usergraph/social-service/pkg/log"
	"github.com/usergraph/social-service/pkg/persistence"
	pkgsql "github.com/usergraph/social-service/pkg/sql"
	pkgsync "github.com/usergraph/social-service/pkg/sync"
)

type DependencyContainer struct {
	UserService       lazy.Loader[service.User]
	ProfileService    lazy.Loader[service.Profile]
	PostService       lazy.Loader[service.Post]
	MemberTypeService lazy.Loader[service.MemberType]

	listUsersHandler       lazy.Loader[http.ListUsersHandler]
	getUserByIDHandler     lazy.Loader[http.GetUserByIDHandler]
	createUserHandler      lazy.Loader[http.CreateUserHandler]
	changeUserHandler      lazy.Loader[http.ChangeUserHandler]
	deleteUserHandler      lazy.Loader[http.DeleteUserHandler]
	subscribeUserHandler   lazy.Loader[http.SubscribeUserHandler]
	unsubscribeUserHandler lazy.Loader[http.UnsubscribeUserHandler]

	listProfilesHandler   lazy.Loader[http.ListProfilesHandler]
	getProfileByIDHandler lazy.Loader[http.GetProfileByIDHandler]
	createProfileHandler  lazy.Loader[http.CreateProfileHandler]
	changeProfileHandler  lazy.Loader[http.ChangeProfileHandler]
	deleteProfileHandler  lazy.Loader[http.DeleteProfileHandler]

	listPostsHandler   lazy.Loader[http.ListPostsHandler]
	getPostByIDHandler lazy.Loader[http.GetPostByIDHandler]
	createPostHandler  lazy.Loader[http.CreatePostHandler]
	changePostHandler  lazy.Loader[http.ChangePostHandler]
	deletePostHandler  lazy.Loader[http.DeletePostHandler]

	listMemberTypesHandler   lazy.Loader[http.ListMemberTypesHandler]
	getMemberTypeByIDHandler lazy.Loader[http.GetMemberTypeByIDHandler]
	changeMemberTypeHandler  lazy.Loader[http.ChangeMemberTypeHandler]
}

func NewDependencyContainer(
	storageMode lazy.Loader[cmd.StorageMode],
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	eventDispatcher := eventDispatcherProvider(logger)
	repos := repositoriesProvider(storageMode, db, dbMigrations, eventDispatcher)

	userService := userServiceProvider(repos)
	profileService := profileServiceProvider(repos)
	postService := postServiceProvider(repos)
	memberTypeService := memberTypeServiceProvider(repos)

	return DependencyContainer{
		UserService:       userService,
		ProfileService:    profileService,
		PostService:       postService,
		MemberTypeService: memberTypeService,

		listUsersHandler: lazy.New(func() (http.ListUsersHandler, error) {
			return http.NewListUsersHandler(userService.MustLoad()), nil
		}),
		getUserByIDHandler: lazy.New(func() (http.GetUserByIDHandler, error) {
			return http.NewGetUserByIDHandler(userService.MustLoad()), nil
		}),
		createUserHandler: lazy.New(func() (http.CreateUserHandler, error) {
			return http.NewCreateUserHandler(userService.MustLoad()), nil
		}),
		changeUserHandler: lazy.New(func() (http.ChangeUserHandler, error) {
			return http.NewChangeUserHandler(userService.MustLoad()), nil
		}),
		deleteUserHandler: lazy.New(func() (http.DeleteUserHandler, error) {
			return http.NewDeleteUserHandler(userService.MustLoad()), nil
		}),
		subscribeUserHandler: lazy.New(func() (http.SubscribeUserHandler, error) {
			return http.NewSubscribeUserHandler(userService.MustLoad()), nil
		}),
		unsubscribeUserHandler: lazy.New(func() (http.UnsubscribeUserHandler, error) {
			return http.NewUnsubscribeUserHandler(userService.MustLoad()), nil
		}),

		listProfilesHandler: lazy.New(func() (http.ListProfilesHandler, error) {
			return http.NewListProfilesHandler(profileService.MustLoad()), nil
		}),
		getProfileByIDHandler: lazy.New(func() (http.GetProfileByIDHandler, error) {
			return http.NewGetProfileByIDHandler(profileService.MustLoad()), nil
		}),
		createProfileHandler: lazy.New(func() (http.CreateProfileHandler, error) {
			return http.NewCreateProfileHandler(profileService.MustLoad()), nil
		}),
		changeProfileHandler: lazy.New(func() (http.ChangeProfileHandler, error) {
			return http.NewChangeProfileHandler(profileService.MustLoad()), nil
		}),
		deleteProfileHandler: lazy.New(func() (http.DeleteProfileHandler, error) {
			return http.NewDeleteProfileHandler(profileService.MustLoad()), nil
		}),

		listPostsHandler: lazy.New(func() (http.ListPostsHandler, error) {
			return http.NewListPostsHandler(postService.MustLoad()), nil
		}),
		getPostByIDHandler: lazy.New(func() (http.GetPostByIDHandler, error) {
			return http.NewGetPostByIDHandler(postService.MustLoad()), nil
		}),
		createPostHandler: lazy.New(func() (http.CreatePostHandler, error) {
			return http.NewCreatePostHandler(postService.MustLoad()), nil
		}),
		changePostHandler: lazy.New(func() (http.ChangePostHandler, error) {
			return http.NewChangePostHandler(postService.MustLoad()), nil
		}),
		deletePostHandler: lazy.New(func() (http.DeletePostHandler, error) {
			return http.NewDeletePostHandler(postService.MustLoad()), nil
		}),

		listMemberTypesHandler: lazy.New(func() (http.ListMemberTypesHandler, error) {
			return http.NewListMemberTypesHandler(memberTypeService.MustLoad()), nil
		}),
		getMemberTypeByIDHandler: lazy.New(func() (http.GetMemberTypeByIDHandler, error) {
			return http.NewGetMemberTypeByIDHandler(memberTypeService.MustLoad()), nil
		}),
		changeMemberTypeHandler: lazy.New(func() (http.ChangeMemberTypeHandler, error) {
			return http.NewChangeMemberTypeHandler(memberTypeService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.listUsersHandler.MustLoad())
	registry.Register(c.getUserByIDHandler.MustLoad())
	registry.Register(c.createUserHandler.MustLoad())
	registry.Register(c.changeUserHandler.MustLoad())
	registry.Register(c.deleteUserHandler.MustLoad())
	registry.Register(c.subscribeUserHandler.MustLoad())
	registry.Register(c.unsubscribeUserHandler.MustLoad())

	registry.Register(c.listProfilesHandler.MustLoad())
	registry.Register(c.getProfileByIDHandler.MustLoad())
	registry.Register(c.createProfileHandler.MustLoad())
	registry.Register(c.changeProfileHandler.MustLoad())
	registry.Register(c.deleteProfileHandler.MustLoad())

	registry.Register(c.listPostsHandler.MustLoad())
	registry.Register(c.getPostByIDHandler.MustLoad())
	registry.Register(c.createPostHandler.MustLoad())
	registry.Register(c.changePostHandler.MustLoad())
	registry.Register(c.deletePostHandler.MustLoad())

	registry.Register(c.listMemberTypesHandler.MustLoad())
	registry.Register(c.getMemberTypeByIDHandler.MustLoad())
	registry.Register(c.changeMemberTypeHandler.MustLoad())
}

type repositories struct {
	User        domain.UserRepository
	Profile     domain.ProfileRepository
	Post        domain.PostRepository
	MemberType  domain.MemberTypeRepository
	Transaction persistence.Transaction
}

func eventDispatcherProvider(logger lazy.Loader[log.Logger]) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		return event.NewDispatcher(map[string][]event.Handler{
			domain.EventUserDeleted{}.Type(): {
				event.NewTypedHandler(func(ctx context.Context, evt domain.EventUserDeleted) error {
					logger.MustLoad().WithField("userID", evt.UserID).Info(ctx, "user deleted with all owned data")
					return nil
				}),
			},
		}), nil
	})
}

func repositoriesProvider(
	storageMode lazy.Loader[cmd.StorageMode],
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	eventDispatcher lazy.Loader[event.Dispatcher],
) lazy.Loader[repositories] {
	return lazy.New(func() (repositories, error) {
		if storageMode.MustLoad() == cmd.StorageModeMemory {
			return repositories{
				User:        mem.NewUserRepository(eventDispatcher.MustLoad()),
				Profile:     mem.NewProfileRepository(),
				Post:        mem.NewPostRepository(),
				MemberType:  mem.NewMemberTypeRepository(),
				Transaction: persistence.NewLockingTransaction(pkgsync.NewCriticalSection()),
			}, nil
		}

		dbMigrations.MustLoad().MustExecute(datasql.Migrations)
		client := pkgsql.NewTransactionalClient(db.MustLoad())
		return repositories{
			User:        socialsql.NewUserRepository(client, eventDispatcher.MustLoad()),
			Profile:     socialsql.NewProfileRepository(client),
			Post:        socialsql.NewPostRepository(client),
			MemberType:  socialsql.NewMemberTypeRepository(client),
			Transaction: pkgsql.NewTransaction(db.MustLoad(), domain.AggregateNameUser, nil),
		}, nil
	})
}

func userServiceProvider(repos lazy.Loader[repositories]) lazy.Loader[service.User] {
	return lazy.New(func() (service.User, error) {
		return service.NewUser(
			repos.MustLoad().User,
			repos.MustLoad().Profile,
			repos.MustLoad().Post,
			repos.MustLoad().Transaction,
		), nil
	})
}

func profileServiceProvider(repos lazy.Loader[repositories]) lazy.Loader[service.Profile] {
	return lazy.New(func() (service.Profile, error) {
		return service.NewProfile(
			repos.MustLoad().Profile,
			repos.MustLoad().User,
			repos.MustLoad().MemberType,
			repos.MustLoad().Transaction,
		), nil
	})
}

func postServiceProvider(repos lazy.Loader[repositories]) lazy.Loader[service.Post] {
	return lazy.New(func() (service.Post, error) {
		return service.NewPost(repos.MustLoad().Post), nil
	})
}

func memberTypeServiceProvider(repos lazy.Loader[repositories]) lazy.Loader[service.MemberType] {
	return lazy.New(func() (service.MemberType, error) {
		return service.NewMemberType(repos.MustLoad().MemberType), nil
	})
}
