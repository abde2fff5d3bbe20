package tjp

// Folder partially describes a Joplin folder (notebook). Treat as read-only.
type Folder struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	Title    string `json:"title"`
}

type folderPage struct {
	Items   []*Folder `json:"items"`
	HasMore bool      `json:"has_more"`
}

// FolderChildren returns the folders whose parent is the given id ("" for top-level folders),
// preserving the order of the input.
func FolderChildren(folders []*Folder, parentID string) []*Folder {
	var children []*Folder
	for _, f := range folders {
		if f.ParentID == parentID {
			children = append(children, f)
		}
	}
	return children
}
