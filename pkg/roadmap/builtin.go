package roadmap

// Builtin returns the stock plan: the IAmazonS3 interface
// implementation roadmap for the Couchbase Lite backend, eight phases
// across two rows with a legend and technical notes.
func Builtin() Plan {
	return Plan{
		Title:    "IAmazonS3 Interface Implementation Roadmap",
		Subtitle: "Couchbase Lite Backend | Total: 156+ Methods | Implemented: 16 (~10%) | Remaining: 140+",
		Rows: []Row{
			{Phases: []Phase{
				{
					Title:    "PHASE 1: FOUNDATION",
					Subtitle: "[COMPLETED]",
					Color:    ColorCompleted,
					Items: []Item{
						{Title: "Bucket Operations", Methods: []string{"PutBucketAsync", "DeleteBucketAsync", "ListBucketsAsync"}},
						{Title: "Object Operations", Methods: []string{"PutObjectAsync", "GetObjectAsync", "DeleteObjectAsync", "DeleteObjectsAsync"}},
						{Title: "Listing & Config", Methods: []string{"ListObjectsV2Async", "IClientConfig", "IDisposable"}},
					},
				},
				{
					Title:    "PHASE 2: ESSENTIAL OPS",
					Subtitle: "Priority: HIGH",
					Color:    ColorHigh,
					Items: []Item{
						{Title: "Metadata Operations", Methods: []string{"GetObjectMetadataAsync", "HeadBucketAsync", "DoesS3BucketExistAsync"}},
						{Title: "Copy Operations", Methods: []string{"CopyObjectAsync (3)", "CopyPartAsync"}},
						{Title: "Pre-signed URLs", Methods: []string{"GetPreSignedURL", "GetPreSignedURLAsync"}},
					},
				},
				{
					Title:    "PHASE 3: VERSIONING",
					Subtitle: "Priority: MEDIUM",
					Color:    ColorMediumBlue,
					Items: []Item{
						{Title: "Schema Updates", Methods: []string{"Version ID generation", "Version chain tracking", "Delete markers"}},
						{Title: "Versioning Config", Methods: []string{"GetBucketVersioningAsync", "PutBucketVersioningAsync"}},
						{Title: "Version Operations", Methods: []string{"ListVersionsAsync", "GetObject w/ VersionId"}},
					},
				},
				{
					Title:    "PHASE 4: MULTIPART",
					Subtitle: "Priority: MEDIUM",
					Color:    ColorMediumPurple,
					Items: []Item{
						{Title: "Schema Updates", Methods: []string{"Upload tracking docs", "Part storage schema", "State management"}},
						{Title: "Upload Lifecycle", Methods: []string{"InitiateMultipartUploadAsync", "AbortMultipartUploadAsync", "CompleteMultipartUploadAsync"}},
						{Title: "Part Operations", Methods: []string{"UploadPartAsync", "ListPartsAsync"}},
					},
				},
				{
					Title:    "PHASE 5: ACCESS CTRL",
					Subtitle: "Priority: MEDIUM",
					Color:    ColorMediumRed,
					Items: []Item{
						{Title: "ACL Operations", Methods: []string{"GetACLAsync", "PutACLAsync", "MakeObjectPublicAsync"}},
						{Title: "Bucket Policies", Methods: []string{"GetBucketPolicyAsync", "PutBucketPolicyAsync", "DeleteBucketPolicyAsync"}},
						{Title: "Public Access", Methods: []string{"GetPublicAccessBlockAsync", "PutPublicAccessBlockAsync"}},
					},
				},
			}},
			{Phases: []Phase{
				{
					Title:    "PHASE 6: BUCKET CONFIG",
					Subtitle: "Priority: LOW",
					Color:    ColorLowOrange,
					Items: []Item{
						{Title: "Encryption", Methods: []string{"GetBucketEncryptionAsync", "PutBucketEncryptionAsync"}},
						{Title: "Lifecycle Rules", Methods: []string{"GetLifecycleConfigurationAsync", "PutLifecycleConfigurationAsync"}},
						{Title: "CORS & Website", Methods: []string{"GetCORSConfigurationAsync", "PutBucketWebsiteAsync"}},
					},
				},
				{
					Title:    "PHASE 7: OBJECT FEATURES",
					Subtitle: "Priority: LOW",
					Color:    ColorLowGreen,
					Items: []Item{
						{Title: "Object Tagging", Methods: []string{"GetObjectTaggingAsync", "PutObjectTaggingAsync"}},
						{Title: "Object Lock", Methods: []string{"GetObjectLockConfigurationAsync", "PutObjectRetentionAsync"}},
						{Title: "Legal Hold", Methods: []string{"GetObjectLegalHoldAsync", "PutObjectLegalHoldAsync"}},
					},
				},
				{
					Title:    "PHASE 8: ADVANCED",
					Subtitle: "Priority: OPTIONAL",
					Color:    ColorOptional,
					Items: []Item{
						{Title: "S3 Select", Methods: []string{"SelectObjectContentAsync", "SQL-like query support"}},
						{Title: "Object Lambda", Methods: []string{"WriteGetObjectResponseAsync"}},
						{Title: "Directory Buckets", Methods: []string{"ListDirectoryBucketsAsync", "CreateSessionAsync"}},
					},
				},
			}},
		},
		Legend: []LegendEntry{
			{Color: ColorCompleted, Label: "Completed (16 methods)"},
			{Color: ColorHigh, Label: "High Priority (~15 methods)"},
			{Color: ColorMediumBlue, Label: "Medium Priority (~35 methods)"},
			{Color: ColorLowOrange, Label: "Low Priority (~50 methods)"},
			{Color: ColorOptional, Label: "Optional (~40 methods)"},
		},
		StatLines: []string{
			"Implementation Stats:",
			"",
			"Total Methods: ~156",
			"Implemented: 16",
			"Remaining: ~140",
			"",
			"Current: ~10%",
			"After Phase 2: ~20%",
			"After Phase 4: ~40%",
			"After Phase 6: ~70%",
			"Complete: 100%",
		},
		Notes: []string{
			"Storage Backend: Couchbase Lite (Document DB) | Framework: .NET 9 | Package: Couchbase.Lite 3.1.9",
			"Document Schema: Buckets (bucket::{name}), Objects (object::{bucket}::{key}), Versions (version::{bucket}::{key}::{versionId})",
			"Key Decisions: Use InBatch() for transactions | MD5-based ETags | Blob storage for content | Indexes for queries",
		},
	}
}
