package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/louisbranch/rowactions/internal/rowactions"
	"github.com/louisbranch/rowactions/internal/services/admin/storage"
)

// RegisterDefaultActions wires the built-in row actions for every listing.
// Integrators embedding the admin surface can register more before Activate.
func RegisterDefaultActions(service *rowactions.Service, store storage.Store) {
	registerItemActions(service, store)
	registerPrincipalActions(service, store)
	registerTermActions(service, store)
	registerCommentActions(service, store)
	registerAttachmentActions(service, store)
}

func registerItemActions(service *rowactions.Service, store storage.Store) {
	service.RegisterActions(rowactions.RegisterInput{
		Kind:     rowactions.KindItem,
		Subkinds: []string{"article", "page"},
		Actions: []rowactions.Definition{
			{
				Key:        "preview",
				Label:      "Preview",
				Target:     rowactions.URLResolver(func(objectID int64) string { return "/items/preview?id=" + strconv.FormatInt(objectID, 10) }),
				Position:   rowactions.After("edit"),
				Permission: rowactions.AllowAll{},
				LinkTarget: "_blank",
			},
			{
				Key:   "archive",
				Label: "Archive",
				Target: rowactions.AsyncCallback(func(ctx context.Context, objectID int64, _ rowactions.Options) (rowactions.Outcome, error) {
					if err := store.UpdateItemStatus(ctx, objectID, "archived"); err != nil {
						return rowactions.Outcome{}, fmt.Errorf("archive item: %w", err)
					}
					return rowactions.Outcome{Message: "Item archived.", Reload: true}, nil
				}),
				Position:   rowactions.Before("delete"),
				Permission: rowactions.AllowCapability{Capability: rowactions.CapabilityEditItems},
				Confirm:    "Archive this item?",
				Icon:       "archive",
			},
		},
	})
}

func registerPrincipalActions(service *rowactions.Service, store storage.Store) {
	service.RegisterActions(rowactions.RegisterInput{
		Kind: rowactions.KindPrincipal,
		Actions: []rowactions.Definition{
			{
				Key:        "profile",
				Label:      "Profile",
				Target:     rowactions.StaticURL("/principals/profile"),
				Permission: rowactions.AllowAll{},
			},
			{
				Key:   "send-reset",
				Label: "Send password reset",
				Target: rowactions.AsyncCallback(func(ctx context.Context, objectID int64, _ rowactions.Options) (rowactions.Outcome, error) {
					if err := store.SetObjectMeta(ctx, string(rowactions.KindPrincipal), objectID, "reset_requested", "1"); err != nil {
						return rowactions.Outcome{}, fmt.Errorf("record reset request: %w", err)
					}
					return rowactions.Outcome{Message: "Password reset queued."}, nil
				}),
				Position:   rowactions.Before("delete"),
				Permission: rowactions.AllowCapability{Capability: rowactions.CapabilityEditPrincipals},
				Confirm:    "Send a password reset to this user?",
			},
		},
	})
}

func registerTermActions(service *rowactions.Service, store storage.Store) {
	service.RegisterActions(rowactions.RegisterInput{
		Kind:     rowactions.KindTerm,
		Subkinds: []string{"category", "tag"},
		Actions: []rowactions.Definition{
			{
				Key:   "reset-count",
				Label: "Reset count",
				Target: rowactions.AsyncCallback(func(ctx context.Context, objectID int64, _ rowactions.Options) (rowactions.Outcome, error) {
					if err := store.ResetTermCount(ctx, objectID); err != nil {
						return rowactions.Outcome{}, fmt.Errorf("reset term count: %w", err)
					}
					return rowactions.Outcome{Message: "Term count reset.", Reload: true}, nil
				}),
				Permission: rowactions.AllowCapability{Capability: rowactions.CapabilityManageTerms},
				Confirm:    "Reset the usage count for this term?",
			},
		},
	})
}

func registerCommentActions(service *rowactions.Service, store storage.Store) {
	pendingOnly := func(ctx context.Context, objectID int64) bool {
		comment, err := store.GetComment(ctx, objectID)
		if err != nil {
			return false
		}
		return comment.Status == "pending"
	}

	moderate := func(status, message string) rowactions.Callback {
		return func(ctx context.Context, objectID int64, _ rowactions.Options) (rowactions.Outcome, error) {
			if err := store.UpdateCommentStatus(ctx, objectID, status); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return rowactions.Outcome{}, fmt.Errorf("comment %d not found", objectID)
				}
				return rowactions.Outcome{}, fmt.Errorf("update comment: %w", err)
			}
			return rowactions.Outcome{Message: message, RemoveRow: true}, nil
		}
	}

	service.RegisterActions(rowactions.RegisterInput{
		Kind: rowactions.KindComment,
		Actions: []rowactions.Definition{
			{
				Key:      "approve",
				Label:    "Approve",
				Target:   rowactions.AsyncCallback(moderate("approved", "Comment approved.")),
				Position: rowactions.Before("edit"),
				Permission: rowactions.AllowResolver{
					Capability: rowactions.CapabilityModerateComments,
					Resolver:   pendingOnly,
				},
				Icon: "check",
			},
			{
				Key:      "spam",
				Label:    "Spam",
				Target:   rowactions.AsyncCallback(moderate("spam", "Comment marked as spam.")),
				Position: rowactions.After("approve"),
				Permission: rowactions.AllowCapability{
					Capability: rowactions.CapabilityModerateComments,
				},
				Confirm: "Mark this comment as spam?",
				Icon:    "flag",
			},
		},
		RemoveKeys: []string{"edit"},
	})
}

func registerAttachmentActions(service *rowactions.Service, store storage.Store) {
	service.RegisterActions(rowactions.RegisterInput{
		Kind: rowactions.KindAttachment,
		Actions: []rowactions.Definition{
			{
				Key:        "download",
				Label:      "Download",
				Target:     rowactions.StaticURL("/attachments/download"),
				Permission: rowactions.AllowAll{},
				LinkTarget: "_blank",
				Icon:       "download",
			},
			{
				Key: "flag",
				LabelFunc: func(objectID int64) string {
					return "Flag #" + strconv.FormatInt(objectID, 10)
				},
				Target: rowactions.AsyncCallback(func(ctx context.Context, objectID int64, opts rowactions.Options) (rowactions.Outcome, error) {
					reason, _ := opts["reason"].(string)
					if reason == "" {
						reason = "unspecified"
					}
					if err := store.SetObjectMeta(ctx, string(rowactions.KindAttachment), objectID, "flagged", reason); err != nil {
						return rowactions.Outcome{}, fmt.Errorf("flag attachment: %w", err)
					}
					return rowactions.Outcome{Message: "Attachment flagged for review."}, nil
				}),
				Permission: rowactions.AllowCapability{Capability: rowactions.CapabilityUploadFiles},
			},
		},
	})
}
