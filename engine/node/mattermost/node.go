package mattermost

import (
	"context"

	"github.com/patchline/patchline/engine/credential"
	"github.com/patchline/patchline/engine/node"
	"github.com/patchline/patchline/engine/rest"
)

// NodeID is the registry identifier of the Mattermost node.
const NodeID = "mattermost"

// apiPath is the REST prefix every operation is relative to.
const apiPath = "/api/v4"

// Mattermost paginates from page 0 with page/per_page.
const defaultPageSize = 100

func pager(pageSize int) rest.Pager {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return rest.Pager{PageParam: "page", SizeParam: "per_page", StartPage: 0, PageSize: pageSize}
}

// newClient builds a REST client from the credential attached to the context.
func newClient(ctx context.Context) (*rest.Client, error) {
	cred, err := credential.FromContext(ctx).Credential(ctx, credential.KindMattermost)
	if err != nil {
		return nil, err
	}
	return rest.ForCredential(ctx, cred, apiPath)
}

// Definition returns the Mattermost node. The desactive alias keeps the
// legacy spelling of user.deactive dispatching; it is the only alias and the
// pattern stops here.
func Definition() *node.Definition {
	return &node.Definition{
		ID:          NodeID,
		Description: "Consume the Mattermost API: channels, messages, reactions, and users.",
		Credential:  credential.KindMattermost,
		Operations: map[node.Action]node.Operation{
			{Resource: "channel", Operation: "create"}: {
				Description: "Create a new channel",
				Schema:      channelCreateSchema,
				Handler:     channelCreate,
			},
			{Resource: "channel", Operation: "delete"}: {
				Description: "Archive a channel",
				Schema:      channelIDSchema,
				Handler:     channelDelete,
			},
			{Resource: "channel", Operation: "restore"}: {
				Description: "Restore an archived channel",
				Schema:      channelIDSchema,
				Handler:     channelRestore,
			},
			{Resource: "channel", Operation: "addUser"}: {
				Description: "Add a user to a channel",
				Schema:      channelAddUserSchema,
				Handler:     channelAddUser,
			},
			{Resource: "channel", Operation: "statistics"}: {
				Description: "Get statistics for a channel",
				Schema:      channelIDSchema,
				Handler:     channelStatistics,
			},
			{Resource: "channel", Operation: "search"}: {
				Description: "Search channels in a team",
				Schema:      channelSearchSchema,
				Handler:     channelSearch,
			},
			{Resource: "channel", Operation: "members"}: {
				Description: "List members of a channel",
				Schema:      channelMembersSchema,
				Handler:     channelMembers,
			},
			{Resource: "message", Operation: "post"}: {
				Description: "Post a message to a channel",
				Schema:      messagePostSchema,
				Handler:     messagePost,
			},
			{Resource: "message", Operation: "postEphemeral"}: {
				Description: "Post an ephemeral message to a user",
				Schema:      messagePostEphemeralSchema,
				Handler:     messagePostEphemeral,
			},
			{Resource: "message", Operation: "delete"}: {
				Description: "Delete a post",
				Schema:      messageDeleteSchema,
				Handler:     messageDelete,
			},
			{Resource: "reaction", Operation: "create"}: {
				Description: "Add an emoji reaction to a post",
				Schema:      reactionSchema,
				Handler:     reactionCreate,
			},
			{Resource: "reaction", Operation: "delete"}: {
				Description: "Remove an emoji reaction from a post",
				Schema:      reactionSchema,
				Handler:     reactionDelete,
			},
			{Resource: "reaction", Operation: "getAll"}: {
				Description: "List the reactions on a post",
				Schema:      reactionGetAllSchema,
				Handler:     reactionGetAll,
			},
			{Resource: "user", Operation: "create"}: {
				Description: "Create a new user",
				Schema:      userCreateSchema,
				Handler:     userCreate,
			},
			{Resource: "user", Operation: "deactive"}: {
				Description: "Deactivate a user and revoke their sessions",
				Schema:      userIDSchema,
				Handler:     userDeactive,
			},
			{Resource: "user", Operation: "getAll"}: {
				Description: "List users, optionally scoped to a team or channel",
				Schema:      userGetAllSchema,
				Handler:     userGetAll,
			},
			{Resource: "user", Operation: "getByEmail"}: {
				Description: "Get a user by email",
				Schema:      userGetByEmailSchema,
				Handler:     userGetByEmail,
			},
			{Resource: "user", Operation: "getById"}: {
				Description: "Get users by their IDs",
				Schema:      userGetByIDSchema,
				Handler:     userGetByID,
			},
			{Resource: "user", Operation: "invite"}: {
				Description: "Invite users to a team by email",
				Schema:      userInviteSchema,
				Handler:     userInvite,
			},
		},
		Aliases: map[node.Action]node.Action{
			{Resource: "user", Operation: "desactive"}: {Resource: "user", Operation: "deactive"},
		},
		Loaders: map[string]node.OptionLoader{
			"channels": loadChannels,
			"teams":    loadTeams,
			"users":    loadUsers,
		},
	}
}
