package reader

const (
	metadataFilename  = "metadata.json"
	hierarchyFilename = "hierarchy.bin"
	octreeFilename    = "octree.bin"
)
