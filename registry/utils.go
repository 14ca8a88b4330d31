package registry

import (
	"bytes"
	"fmt"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"
	"go.uber.org/zap"
)

const wellKnownImportPrefix = "google/protobuf/"

// getAllProtoInfo uses DFS to fetch the input file and everything it imports.
// Files parsed by an earlier load are not returned again.
func (r *Registry) getAllProtoInfo(protoFile string) ([]string, error) {
	visited := make(map[string]struct{}) // to make sure we don't end up in a loop
	result := make([]string, 0)

	var dfs func(protoFile string) error
	dfs = func(protoFile string) error {
		if _, ok := visited[protoFile]; ok {
			return nil
		}
		visited[protoFile] = struct{}{}
		if _, ok := r.parsedProtoBody[protoFile]; ok {
			return nil
		}

		protoBytes, err := r.readFile(protoFile)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		parsedBody, err := protoparser.Parse(bytes.NewBuffer(protoBytes), protoparser.WithFilename(protoFile))
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", protoFile, err)
		}

		entity := &protoFileEntity{
			imports: make([]string, 0),
			syntax:  "proto2",
		}
		if parsedBody.Syntax != nil {
			entity.syntax = strings.Trim(parsedBody.Syntax.ProtobufVersion, `"'`)
		}
		for _, body := range parsedBody.ProtoBody {
			switch b := body.(type) {
			case *protoparserparser.Package:
				entity.pkg = b.Name
			case *protoparserparser.Import: // resolve relation for each imports
				importPath := strings.Trim(b.Location, `"'`)
				// well-known imports resolve to the built-in definitions
				if strings.HasPrefix(importPath, wellKnownImportPrefix) {
					continue
				}
				fullImportPath, err := r.findIfProtoExists(importPath)
				if err != nil {
					return err
				}
				entity.imports = append(entity.imports, fullImportPath)
				if err = dfs(fullImportPath); err != nil {
					return err
				}
			}
		}

		r.parsedProtoBody[protoFile] = parsedBody
		r.protoEntities[protoFile] = entity
		// imports are appended first so dependencies build before dependents
		result = append(result, protoFile)
		r.logger.Debug("parsed proto file",
			zap.String("file", protoFile),
			zap.String("package", entity.pkg),
			zap.Int("imports", len(entity.imports)))
		return nil
	}

	// run dfs on the input proto path
	protoPath, err := r.findIfProtoExists(protoFile)
	if err != nil {
		return nil, err
	}
	if err := dfs(protoPath); err != nil {
		return nil, err
	}
	return result, nil
}

// findIfProtoExists locates protoPath under one of the proto directories,
// falling back to protoPath itself.
func (r *Registry) findIfProtoExists(protoPath string) (string, error) {
	var (
		fullProtoPath string
		err           error
	)
	protoPath = strings.Trim(protoPath, `"`)
	for _, dir := range r.ProtoDirectories {
		candidate := r.join(dir, protoPath)
		if _, err = r.stat(candidate); err == nil {
			fullProtoPath = candidate
			break
		}
	}
	if fullProtoPath == "" {
		if _, err = r.stat(protoPath); err != nil {
			return "", fmt.Errorf("path does not exist: %s: %w", protoPath, err)
		}
		fullProtoPath = protoPath
	}
	if !strings.HasSuffix(fullProtoPath, ".proto") {
		return "", fmt.Errorf("is not a .proto file: %s", fullProtoPath)
	}
	return fullProtoPath, nil
}

/*
This helper function will return the entity for any referenced type ,
Be it top/file,nested or imported entities.If not found will return an error
Ref - https://github.com/protocolbuffers/protobuf/blob/b7a5772caf08d62a20fd1bca258f501fa4db022c/src/google/protobuf/descriptor.proto#L186-L191
*/
func getReferencedType(typeName, prefix string, allResolvedEntities map[string]struct{}) (string, error) {
	// check if fully qualifed prefixed by dot
	if strings.HasPrefix(typeName, ".") {
		return getFullyQualifiedType(typeName, allResolvedEntities)
	}
	// try resolving from inner entities up till the parent package
	if result, ok := splitNameAndCheck(typeName, prefix, allResolvedEntities); ok {
		return result, nil
	}
	//  check if the entity is referenced to other packages via packageName
	if _, ok := allResolvedEntities[typeName]; ok {
		return typeName, nil
	}
	return "", fmt.Errorf("unable to resolve type name: %s", typeName)
}

// splitNameAndCheck splits the prefixName and tries to append the typeName and find the entity for resolution
// it also tries the find the entities defined using relative path
func splitNameAndCheck(typeName, prefix string, allResolvedEntities map[string]struct{}) (string, bool) {
	var (
		prefixSplit []string
		entityName  string
	)
	prefixSplit = strings.Split(prefix, ".")

	for len(prefixSplit) > 0 && prefixSplit[0] != "" {
		result := strings.Join(prefixSplit, ".")
		entityName = result + "." + typeName
		if _, ok := allResolvedEntities[entityName]; ok {
			return entityName, true
		}
		// Omit the last element in each iteration as we go level above to outer entity
		prefixSplit = prefixSplit[:len(prefixSplit)-1]
	}
	return "", false
}

func getFullyQualifiedType(typeName string, allResolvedEntities map[string]struct{}) (string, error) {
	typeName = strings.TrimPrefix(typeName, ".")
	if _, ok := allResolvedEntities[typeName]; ok {
		return typeName, nil
	}
	return "", fmt.Errorf("unable to resolve fully qualified type name: %s", typeName)
}

// jsonName converts a field name the way protoc derives json_name.
func jsonName(name string) string {
	var b strings.Builder
	upper := false
	for _, c := range name {
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(c)
	}
	return b.String()
}

func unquote(s string) string {
	return strings.Trim(s, `"'`)
}
