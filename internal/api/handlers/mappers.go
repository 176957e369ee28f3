package handlers

import (
	"sharexconnect/internal/domain"
)

// mapProjectToAPI конвертирует domain.Project в API response
func mapProjectToAPI(p *domain.Project) map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"ownerId":     p.OwnerID,
		"visibility":  string(p.Visibility),
		"status":      string(p.Status),
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}

// mapProjectFileToAPI конвертирует метаданные файла проекта, без содержимого
func mapProjectFileToAPI(f *domain.ProjectFile) map[string]interface{} {
	return map[string]interface{}{
		"id":         f.ID,
		"projectId":  f.ProjectID,
		"fileName":   f.FileName,
		"filePath":   f.FilePath,
		"fileType":   f.FileType,
		"fileSize":   f.FileSize,
		"isArchive":  f.IsArchive,
		"uploadedBy": f.UploadedBy,
		"createdAt":  f.CreatedAt,
	}
}

func mapCollaboratorToAPI(c *domain.Collaborator) map[string]interface{} {
	return map[string]interface{}{
		"projectId": c.ProjectID,
		"userId":    c.UserID,
		"username":  c.Username,
		"fullName":  c.FullName,
		"role":      string(c.Role),
		"addedAt":   c.AddedAt,
	}
}

// mapCollaborationRequestToAPI отдаёт заявку с явными requesterId/inviteeId в зависимости от типа
func mapCollaborationRequestToAPI(r *domain.CollaborationRequest) map[string]interface{} {
	resp := map[string]interface{}{
		"id":          r.ID,
		"projectId":   r.ProjectID,
		"type":        string(r.Type),
		"senderId":    r.SenderID,
		"message":     r.Message,
		"status":      string(r.Status),
		"responderId": r.ResponderID,
		"createdAt":   r.CreatedAt,
		"respondedAt": r.RespondedAt,
	}
	if r.Type == domain.CollaborationTypeInvitation {
		resp["inviteeId"] = r.PartyID
	} else {
		resp["requesterId"] = r.PartyID
	}
	return resp
}

func mapRepositoryItemToAPI(item *domain.RepositoryItem) map[string]interface{} {
	resp := map[string]interface{}{
		"id":             item.ID,
		"projectId":      item.ProjectID,
		"parentId":       item.ParentID,
		"path":           item.Path,
		"name":           item.Name,
		"type":           string(item.Type),
		"size":           item.Size,
		"lastModifiedBy": item.LastModifiedBy,
		"createdAt":      item.CreatedAt,
		"updatedAt":      item.UpdatedAt,
	}
	if item.Type == domain.RepositoryItemFile {
		resp["content"] = item.Content
		resp["language"] = item.Language
	}
	return resp
}

func mapChangeRequestToAPI(cr *domain.ChangeRequest) map[string]interface{} {
	return map[string]interface{}{
		"id":              cr.ID,
		"projectId":       cr.ProjectID,
		"requesterId":     cr.RequesterID,
		"title":           cr.Title,
		"description":     cr.Description,
		"changeType":      string(cr.ChangeType),
		"fileId":          cr.FileID,
		"proposedChanges": cr.ProposedChanges,
		"status":          string(cr.Status),
		"reviewerId":      cr.ReviewerID,
		"reviewedAt":      cr.ReviewedAt,
		"createdAt":       cr.CreatedAt,
	}
}

// mapPullRequestToAPI конвертирует domain.PullRequest в API response
func mapPullRequestToAPI(pr *domain.PullRequest) map[string]interface{} {
	resp := map[string]interface{}{
		"id":             pr.ID,
		"projectId":      pr.ProjectID,
		"authorId":       pr.AuthorID,
		"title":          pr.Title,
		"description":    pr.Description,
		"branchName":     pr.BranchName,
		"filesChanged":   pr.FilesChanged,
		"changesPreview": pr.ChangesPreview,
		"status":         string(pr.Status),
		"reviewerId":     pr.ReviewerID,
		"reviewedAt":     pr.ReviewedAt,
		"mergedAt":       pr.MergedAt,
		"createdAt":      pr.CreatedAt,
		"updatedAt":      pr.UpdatedAt,
	}
	if pr.Author != nil {
		resp["author"] = map[string]interface{}{
			"id":       pr.Author.ID,
			"username": pr.Author.Username,
			"fullName": pr.Author.FullName,
		}
	}
	if pr.Files != nil {
		files := make([]map[string]interface{}, len(pr.Files))
		for i := range pr.Files {
			f := &pr.Files[i]
			files[i] = map[string]interface{}{
				"id":        f.ID,
				"fileName":  f.FileName,
				"filePath":  f.FilePath,
				"fileType":  f.FileType,
				"fileSize":  f.FileSize,
				"isArchive": f.IsArchive,
				"createdAt": f.CreatedAt,
			}
		}
		resp["files"] = files
	}
	return resp
}
