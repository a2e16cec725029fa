package domain

import (
	"fmt"
	"strings"
)

// Level identifies a depth in the hierarchy.
type Level int

const (
	LevelClient Level = iota
	LevelCampaign
	LevelAdGroup
	LevelAd
)

// Collection segment names in the store. These follow the store's historical
// terms: campaigns live under "adgroups", ad groups under "adtypes" and ads
// under "categories". Renaming them would orphan every existing document.
const (
	segClients   = "clients"
	segCampaigns = "adgroups"
	segAdGroups  = "adtypes"
	segAds       = "categories"
)

var levelSegments = map[Level]string{
	LevelClient:   segClients,
	LevelCampaign: segCampaigns,
	LevelAdGroup:  segAdGroups,
	LevelAd:       segAds,
}

var levelNames = map[Level]string{
	LevelClient:   "client",
	LevelCampaign: "campaign",
	LevelAdGroup:  "adGroup",
	LevelAd:       "ad",
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Child returns the level one step below, or the same level for LevelAd.
func (l Level) Child() Level {
	if l >= LevelAd {
		return LevelAd
	}
	return l + 1
}

// Segment returns the collection segment documents of this level live under.
func (l Level) Segment() string {
	return levelSegments[l]
}

// ParseLevel maps the wire names used by the HTTP layer onto levels.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return LevelClient, nil
	case "campaign":
		return LevelCampaign, nil
	case "adgroup", "ad_group":
		return LevelAdGroup, nil
	case "ad":
		return LevelAd, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// NodePath builds the document path of a node from its parent path. The
// client level has no parent; pass "".
func NodePath(level Level, parentPath, key string) string {
	if parentPath == "" {
		return levelSegments[level] + "/" + key
	}
	return parentPath + "/" + levelSegments[level] + "/" + key
}

// ChildCollection returns the path under which a node's children live.
func ChildCollection(nodeLevel Level, nodePath string) string {
	return nodePath + "/" + nodeLevel.Child().Segment()
}

// ClientPath addresses a client document.
func ClientPath(clientKey string) string {
	return NodePath(LevelClient, "", clientKey)
}

// CampaignPath addresses a campaign document under a client.
func CampaignPath(clientKey, campaignKey string) string {
	return NodePath(LevelCampaign, ClientPath(clientKey), campaignKey)
}

// AdGroupPath addresses an ad group document under a campaign.
func AdGroupPath(clientKey, campaignKey, adGroupKey string) string {
	return NodePath(LevelAdGroup, CampaignPath(clientKey, campaignKey), adGroupKey)
}

// AdPath addresses an ad document under an ad group.
func AdPath(clientKey, campaignKey, adGroupKey, adKey string) string {
	return NodePath(LevelAd, AdGroupPath(clientKey, campaignKey, adGroupKey), adKey)
}

// ParsePath validates a document path and returns its level together with
// the node keys from root to leaf. A valid path alternates collection
// segments with keys, starting at "clients".
func ParsePath(path string) (Level, []string, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || len(parts)%2 != 0 || len(parts) > 8 {
		return 0, nil, fmt.Errorf("malformed path %q", path)
	}
	keys := make([]string, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		level := Level(i / 2)
		if parts[i] != level.Segment() {
			return 0, nil, fmt.Errorf("malformed path %q: want segment %q at position %d, got %q",
				path, level.Segment(), i, parts[i])
		}
		if parts[i+1] == "" {
			return 0, nil, fmt.Errorf("malformed path %q: empty key", path)
		}
		keys = append(keys, parts[i+1])
	}
	return Level(len(keys) - 1), keys, nil
}

// ParentPath returns the collection path the node lives in: the document
// path minus its final key segment. It matches the collection paths
// ListChildren is queried with.
func ParentPath(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[:len(parts)-1], "/")
}

// LastKey returns the node's own key, the final path segment.
func LastKey(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return parts[len(parts)-1]
}
