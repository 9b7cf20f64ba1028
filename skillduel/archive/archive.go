// Package archive exports finished plans to S3-compatible object
// storage. Strictly best-effort: the plan's local state never depends on
// an archive succeeding.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/skillduel/skillduel/skillduel/planstore"
)

type Service struct {
	client *s3.Client
	bucket string
	root   string
}

func NewService(key, secret, region, bucket, root string) (*Service, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load archive storage config: %w", err)
	}

	return &Service{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		root:   strings.Trim(root, "/"),
	}, nil
}

// ArchivePlan uploads the plan as JSON under
// <root>/<userID>/<skill>-<date>.json.
func (s *Service) ArchivePlan(ctx context.Context, userID string, plan *planstore.Plan) error {
	if plan == nil {
		return fmt.Errorf("no plan to archive")
	}

	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s-%s.json",
		s.root, userID, slugify(plan.SkillName), time.Now().UTC().Format("2006-01-02"))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload plan archive: %w", err)
	}
	return nil
}

func slugify(name string) string {
	name = strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	var builder strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
